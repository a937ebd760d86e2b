package cli

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/shunt-cli/shunt"
	"github.com/shunt-cli/shunt/internal/config"
	"github.com/shunt-cli/shunt/ui"
)

// recordTypes lists the DNS record types fleet stores, in display order.
var recordTypes = []string{"A", "AAAA", "CNAME", "MX", "TXT", "NS", "SRV"}

// ipAddress validates a flag value as an IPv4 or IPv6 address.
func ipAddress() shunt.Format {
	return func(v string) error {
		if net.ParseIP(v) == nil {
			return fmt.Errorf("expected IP address, got '%s'", v)
		}
		return nil
	}
}

// recordType validates a DNS record type, case-insensitively.
func recordType() shunt.Format {
	return func(v string) error {
		upper := strings.ToUpper(v)
		for _, t := range recordTypes {
			if upper == t {
				return nil
			}
		}
		return fmt.Errorf("expected one of (%s), got '%s'", strings.Join(recordTypes, " / "), v)
	}
}

// DomainCreateCommand registers a domain in the inventory.
type DomainCreateCommand struct{}

// Help describes the domain create command.
func (c *DomainCreateCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"Domain Create",
		"fleet domain create <domain> --ip-address <ip>",
		"Register a domain and point its apex at an IP address.",
	)
	h.AddParam("domain", "Domain name, like example.com")
	h.AddFlag("--ip-address", "IP address for the apex record (required)")
	h.AddFlag("--www", "Also add a www CNAME pointing at the apex")
	h.AddExample("fleet domain create example.com --ip-address 10.0.0.5")
	h.AddExample("fleet dc example.com --ip-address 10.0.0.5 --www")
	return h
}

// Process creates the domain and saves the inventory.
func (c *DomainCreateCommand) Process(inv *shunt.Invocation) error {
	if err := inv.RequireArgs(1); err != nil {
		return err
	}
	if err := inv.RequireFlagValue("--ip-address"); err != nil {
		return err
	}
	if err := inv.ValidateFlag("--ip-address", ipAddress()); err != nil {
		return err
	}
	name := strings.ToLower(inv.Args[0])

	cfg, path, err := loadOrCreate(inv)
	if err != nil {
		return err
	}
	if _, exists := cfg.Domains[name]; exists {
		return shunt.NewError(shunt.ErrConfig,
			fmt.Sprintf("Domain '%s' already exists", name),
			"Manage its records with 'fleet domain dns add'.")
	}

	domain := config.Domain{IP: inv.ValueOr("--ip-address", "")}
	if inv.HasFlag("--www") {
		domain.Records = append(domain.Records, config.DNSRecord{
			Type:  "CNAME",
			Name:  "www",
			Value: name,
		})
	}

	cfg.Domains[name] = domain
	if err := saveLocked(cfg, path); err != nil {
		return err
	}

	fmt.Printf("%s Created domain '%s' -> %s\n", ui.SymbolSuccess, name, domain.IP)
	return nil
}

// DomainListCommand prints the registered domains as a table.
type DomainListCommand struct{}

// Help describes the domain list command.
func (c *DomainListCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"Domain List",
		"fleet domain list",
		"List the registered domains with their apex addresses and record counts.",
	)
	h.AddExample("fleet domain list")
	return h
}

// Process renders the domain table.
func (c *DomainListCommand) Process(inv *shunt.Invocation) error {
	cfg, _, err := loadExisting(inv)
	if err != nil {
		return err
	}

	if len(cfg.Domains) == 0 {
		fmt.Println("No domains configured.")
		fmt.Println("\nAdd one with: fleet domain create <domain> --ip-address <ip>")
		return nil
	}

	var rows [][]string
	for _, name := range sortedDomainNames(cfg) {
		d := cfg.Domains[name]
		rows = append(rows, []string{name, d.IP, strconv.Itoa(len(d.Records))})
	}

	columns := []ui.TableColumn{
		{Title: "DOMAIN", Width: 24},
		{Title: "IP", Width: 16},
		{Title: "RECORDS", Width: 8},
	}
	fmt.Println(ui.RenderTable(columns, rows))
	return nil
}

// DNSAddCommand appends a DNS record to a domain.
type DNSAddCommand struct{}

// Help describes the domain dns add command.
func (c *DNSAddCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"DNS Add",
		"fleet domain dns add <domain> <type> <value>",
		"Add a DNS record under a registered domain. The inventory file is edited in place, preserving hand-written comments.",
	)
	h.AddParam("domain", "Domain the record belongs to")
	h.AddParam("type", "Record type: "+strings.Join(recordTypes, ", "))
	h.AddParam("value", "Record target, like an IP or hostname")
	h.AddFlag("--name", "Record name relative to the domain, like www")
	h.AddExample("fleet domain dns add example.com MX mail.example.com")
	h.AddExample("fleet domain dns add example.com CNAME example.com --name www")
	return h
}

// Process validates the record and writes it through the structure-preserving
// config editor.
func (c *DNSAddCommand) Process(inv *shunt.Invocation) error {
	if err := inv.RequireArgs(3); err != nil {
		return err
	}
	if err := inv.ValidateArgs(shunt.Any(), recordType(), shunt.StringRange(1, 256)); err != nil {
		return err
	}
	name := strings.ToLower(inv.Args[0])

	cfg, path, err := loadExisting(inv)
	if err != nil {
		return err
	}
	if _, exists := cfg.Domains[name]; !exists {
		domains := sortedDomainNames(cfg)
		if similar := shunt.SuggestSimilar(name, domains, 3); len(similar) > 0 {
			return shunt.NewError(shunt.ErrConfig,
				fmt.Sprintf("Domain '%s' not found", name),
				fmt.Sprintf("Did you mean: %s", strings.Join(similar, ", ")))
		}
		return shunt.NewError(shunt.ErrConfig,
			fmt.Sprintf("Domain '%s' not found", name),
			"Create it first with 'fleet domain create'.")
	}

	rec := config.DNSRecord{
		Type:  strings.ToUpper(inv.Args[1]),
		Name:  inv.ValueOr("--name", ""),
		Value: inv.Args[2],
	}
	err = withInventoryLock(path, func() error {
		if err := config.AddDNSRecord(path, name, rec); err != nil {
			return shunt.WrapErrorWithCode(err, shunt.ErrConfig,
				fmt.Sprintf("Couldn't add the record to %s", path),
				"Check the inventory file is writable and valid YAML.")
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s Added %s record to '%s'\n", ui.SymbolSuccess, rec.Type, name)
	return nil
}

// DNSListCommand prints a domain's DNS records.
type DNSListCommand struct{}

// Help describes the domain dns list command.
func (c *DNSListCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"DNS List",
		"fleet domain dns list <domain>",
		"List the DNS records stored under a domain, including the apex record.",
	)
	h.AddParam("domain", "Domain to list records for")
	h.AddExample("fleet domain dns list example.com")
	return h
}

// Process renders the record table for one domain.
func (c *DNSListCommand) Process(inv *shunt.Invocation) error {
	if err := inv.RequireArgs(1); err != nil {
		return err
	}
	name := strings.ToLower(inv.Args[0])

	cfg, _, err := loadExisting(inv)
	if err != nil {
		return err
	}
	domain, exists := cfg.Domains[name]
	if !exists {
		domains := sortedDomainNames(cfg)
		if similar := shunt.SuggestSimilar(name, domains, 3); len(similar) > 0 {
			return shunt.NewError(shunt.ErrConfig,
				fmt.Sprintf("Domain '%s' not found", name),
				fmt.Sprintf("Did you mean: %s", strings.Join(similar, ", ")))
		}
		return shunt.NewError(shunt.ErrConfig,
			fmt.Sprintf("Domain '%s' not found", name),
			"Create it first with 'fleet domain create'.")
	}

	rows := [][]string{
		{"A", "@", domain.IP},
	}
	for _, rec := range domain.Records {
		recName := rec.Name
		if recName == "" {
			recName = "@"
		}
		rows = append(rows, []string{rec.Type, recName, rec.Value})
	}

	columns := []ui.TableColumn{
		{Title: "TYPE", Width: 6},
		{Title: "NAME", Width: 12},
		{Title: "VALUE", Width: 30},
	}
	fmt.Println(ui.RenderTable(columns, rows))
	return nil
}
