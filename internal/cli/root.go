package cli

import (
	"fmt"
	"os"

	"github.com/shunt-cli/shunt"
	"github.com/shunt-cli/shunt/ui"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// GetVersion returns the current version string.
func GetVersion() string {
	return version
}

// NewRouter builds the fleet routing table with every category, command,
// and global flag registered. Registration failures panic; they are
// programming mistakes, not runtime conditions.
func NewRouter() *shunt.Router {
	r := shunt.NewRouter()
	r.SetName("fleet")
	r.SetVersion(fmt.Sprintf("fleet %s (commit %s, built %s)", formatVersion(version), commit, date))
	r.SetLogger(shunt.NewLogger("fleet"))

	r.Global("-V", "--verbose", false, "Enable verbose output")
	r.Global("-c", "--config", true, "Path to the inventory file")
	r.Global("-q", "--no-color", false, "Disable colored output")

	// Flags CI wrappers pass through that fleet tolerates but never reads
	r.Ignore("--ci", false)
	r.Ignore("--log-file", true)

	mustAdd(r.AddCategory("host", "Host Management", "Add, list, and remove inventory hosts"))
	mustAdd(r.AddCategory("domain", "Domain Management", "Manage domains and their DNS records"))
	mustAdd(r.AddSubcategory("domain", "dns", "DNS Records", "Manage DNS records under a domain"))
	mustAdd(r.AddCategory("auth", "Authentication", "Manage the stored deploy credential"))

	r.MustRegister("host add", []string{"ha"}, []string{"--ip-address", "--port", "--tags"}, &HostAddCommand{})
	r.MustRegister("host list", []string{"hl", "hosts"}, []string{"--tags"}, &HostListCommand{})
	r.MustRegister("host remove", []string{"hr"}, nil, &HostRemoveCommand{})
	r.MustRegister("domain create", []string{"dc"}, []string{"--ip-address"}, &DomainCreateCommand{})
	r.MustRegister("domain list", []string{"dl"}, nil, &DomainListCommand{})
	r.MustRegister("domain dns add", nil, []string{"--name"}, &DNSAddCommand{})
	r.MustRegister("domain dns list", nil, nil, &DNSListCommand{})
	r.MustRegister("deploy", nil, []string{"--output"}, &DeployCommand{})
	r.MustRegister("auth set", nil, nil, &AuthSetCommand{})
	r.MustRegister("version", nil, nil, &VersionCommand{})

	return r
}

// Execute builds the router, applies color preferences, and routes os.Args,
// exiting with the dispatch result code.
func Execute() {
	// Color must be settled before any handler writes styled output
	if os.Getenv("NO_COLOR") != "" || !ui.IsTerminal(os.Stdout) {
		ui.DisableColors()
	}
	for _, a := range os.Args[1:] {
		if a == "-q" || a == "--no-color" {
			ui.DisableColors()
		}
	}

	NewRouter().Execute()
}

func mustAdd(err error) {
	if err != nil {
		panic(err)
	}
}

// formatVersion ensures version has a 'v' prefix for display
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}
