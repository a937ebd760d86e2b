package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shunt-cli/shunt"
	"github.com/shunt-cli/shunt/internal/config"
	"github.com/shunt-cli/shunt/internal/sshhosts"
	"github.com/shunt-cli/shunt/internal/util"
	"github.com/shunt-cli/shunt/ui"
)

// HostAddCommand registers a server in the inventory.
type HostAddCommand struct{}

// Help describes the host add command.
func (c *HostAddCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"Host Add",
		"fleet host add <name>",
		"Add a server to the inventory. The address comes from --ip-address when given; otherwise fleet offers the hosts from your SSH config in an interactive picker.",
	)
	h.AddParam("name", "Inventory name for the server")
	h.AddFlag("--ip-address", "Address or hostname to store (skips the picker)")
	h.AddFlag("--port", "SSH port when not 22")
	h.AddFlag("--tags", "Comma-separated tags for filtering")
	h.AddExample("fleet host add web-1 --ip-address 10.0.0.5")
	h.AddExample("fleet ha web-1 --ip-address 10.0.0.5 --port 2222 --tags web,production")
	return h
}

// Process adds the host and saves the inventory.
func (c *HostAddCommand) Process(inv *shunt.Invocation) error {
	if err := inv.RequireArgs(1); err != nil {
		return err
	}
	if err := inv.ValidateArgs(shunt.StringRange(1, 64)); err != nil {
		return err
	}
	name := inv.Args[0]

	cfg, path, err := loadOrCreate(inv)
	if err != nil {
		return err
	}
	if _, exists := cfg.Hosts[name]; exists {
		return shunt.NewError(shunt.ErrConfig,
			fmt.Sprintf("Host '%s' already exists", name),
			"Choose a different name, or use 'fleet host remove' first.")
	}

	host := config.Host{
		Address: inv.ValueOr("--ip-address", ""),
		Tags:    splitTags(inv.ValueOr("--tags", "")),
	}
	if host.Address == "" {
		entry, err := pickSSHHost()
		if err != nil {
			return err
		}
		if entry == nil {
			fmt.Println("Cancelled.")
			return nil
		}
		host.Address = entry.Hostname
		if host.Address == "" {
			host.Address = entry.Alias
		}
		host.User = entry.User
		if entry.Port != "" {
			host.Port, _ = strconv.Atoi(entry.Port)
		}
	}

	if _, ok := inv.Value("--port"); ok {
		if err := inv.ValidateFlag("--port", shunt.IntRange(1, 65536)); err != nil {
			return err
		}
		host.Port, _ = strconv.Atoi(inv.ValueOr("--port", "22"))
	}

	cfg.Hosts[name] = host
	if err := saveLocked(cfg, path); err != nil {
		return err
	}

	fmt.Printf("%s Added host '%s' (%s)\n", ui.SymbolSuccess, name, host.Address)
	return nil
}

// pickSSHHost offers the concrete hosts from ~/.ssh/config in an interactive
// picker. Returns nil when the user cancels.
func pickSSHHost() (*sshhosts.Entry, error) {
	entries, err := sshhosts.Parse()
	if err != nil {
		return nil, shunt.WrapErrorWithCode(err, shunt.ErrConfig,
			"Couldn't read your SSH config",
			"Check ~/.ssh/config for syntax problems.")
	}
	if len(entries) == 0 {
		return nil, shunt.NewError(shunt.ErrConfig,
			"No address given and no SSH hosts found",
			"Pass --ip-address <addr>, or add Host entries to ~/.ssh/config.")
	}

	items := make([]ui.PickItem, len(entries))
	for i, e := range entries {
		items[i] = ui.PickItem{
			Title: e.Alias,
			Desc:  e.Description(),
			Keys:  []string{e.Hostname},
		}
	}

	picked, err := ui.Pick("Select a host", items)
	if err != nil {
		return nil, shunt.WrapError(err, "Couldn't get your selection")
	}
	if picked == nil {
		return nil, nil
	}

	for i := range entries {
		if entries[i].Alias == picked.Title {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// HostListCommand prints the inventory as a table.
type HostListCommand struct{}

// Help describes the host list command.
func (c *HostListCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"Host List",
		"fleet host list",
		"List the servers in the inventory.",
	)
	h.AddFlag("--tags", "Only show hosts carrying every listed tag")
	h.AddExample("fleet host list")
	h.AddExample("fleet hosts --tags web,production")
	return h
}

// Process renders the host table.
func (c *HostListCommand) Process(inv *shunt.Invocation) error {
	cfg, _, err := loadExisting(inv)
	if err != nil {
		return err
	}

	if len(cfg.Hosts) == 0 {
		fmt.Println("No hosts configured.")
		fmt.Println("\nAdd one with: fleet host add <name>")
		return nil
	}

	wanted := splitTags(inv.ValueOr("--tags", ""))

	var rows [][]string
	for _, name := range sortedHostNames(cfg) {
		h := cfg.Hosts[name]
		if !hasAllTags(h, wanted) {
			continue
		}
		port := ""
		if h.Port != 0 && h.Port != 22 {
			port = strconv.Itoa(h.Port)
		}
		rows = append(rows, []string{name, h.Address, h.User, port, util.JoinOrNone(h.Tags)})
	}

	if len(rows) == 0 {
		fmt.Printf("No hosts match tags: %s\n", strings.Join(wanted, ", "))
		return nil
	}

	columns := []ui.TableColumn{
		{Title: "NAME", Width: 12},
		{Title: "ADDRESS", Width: 18},
		{Title: "USER", Width: 10},
		{Title: "PORT", Width: 6},
		{Title: "TAGS", Width: 20},
	}
	fmt.Println(ui.RenderTable(columns, rows))
	return nil
}

// HostRemoveCommand deletes a server from the inventory.
type HostRemoveCommand struct{}

// Help describes the host remove command.
func (c *HostRemoveCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"Host Remove",
		"fleet host remove <name>",
		"Remove a server from the inventory after confirmation.",
	)
	h.AddParam("name", "Inventory name of the server to remove")
	h.AddFlag("--force", "Skip the confirmation prompt")
	h.AddExample("fleet host remove web-1")
	h.AddExample("fleet hr web-1 --force")
	return h
}

// Process removes the host and saves the inventory.
func (c *HostRemoveCommand) Process(inv *shunt.Invocation) error {
	if err := inv.RequireArgs(1); err != nil {
		return err
	}
	name := inv.Args[0]

	cfg, path, err := loadExisting(inv)
	if err != nil {
		return err
	}

	if _, exists := cfg.Hosts[name]; !exists {
		names := sortedHostNames(cfg)
		if similar := shunt.SuggestSimilar(name, names, 3); len(similar) > 0 {
			return shunt.NewError(shunt.ErrConfig,
				fmt.Sprintf("Host '%s' not found", name),
				fmt.Sprintf("Did you mean: %s", strings.Join(similar, ", ")))
		}
		return shunt.NewError(shunt.ErrConfig,
			fmt.Sprintf("Host '%s' not found", name),
			fmt.Sprintf("Available hosts: %s", strings.Join(names, ", ")))
	}

	if !inv.HasFlag("--force") {
		confirmed, err := ui.Confirm(fmt.Sprintf("Remove host '%s'?", name))
		if err != nil {
			return shunt.WrapError(err, "Couldn't get your input")
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	delete(cfg.Hosts, name)
	if err := saveLocked(cfg, path); err != nil {
		return err
	}

	fmt.Printf("%s Removed host '%s'\n", ui.SymbolSuccess, name)
	return nil
}
