package cli

import (
	"fmt"
	"runtime"

	"github.com/shunt-cli/shunt"
	"github.com/shunt-cli/shunt/ui"
)

// VersionCommand prints version and build information.
type VersionCommand struct{}

// Help describes the version command.
func (c *VersionCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"Version",
		"fleet version",
		"Print the version, commit hash, and build date of fleet.",
	)
	h.AddFlag("--short", "Print only the version number")
	h.AddExample("fleet version")
	h.AddExample("fleet version --short")
	return h
}

// Process prints the version details.
func (c *VersionCommand) Process(inv *shunt.Invocation) error {
	if inv.HasFlag("--short") {
		fmt.Println(version)
		return nil
	}

	ui.PrintHeader(ui.HeaderInfo{
		Name:    "fleet",
		Version: formatVersion(version),
		Tagline: "inventory, domains, and deploy bundles",
	})
	fmt.Printf("commit: %s\n", commit)
	fmt.Printf("built: %s\n", date)
	fmt.Printf("go: %s\n", runtime.Version())
	fmt.Printf("os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
