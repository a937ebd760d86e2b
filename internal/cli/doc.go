// Package cli implements the fleet command-line interface.
//
// Each command is a small struct satisfying shunt.Command: Process does the
// work against a parsed Invocation, Help describes the command for the help
// renderer. NewRouter assembles the full registration table, and Execute
// routes os.Args through it.
//
// # Command Structure
//
// Commands are grouped into categories for help output:
//
//	fleet host add <name>                    - Register a server
//	fleet host list                          - Show the inventory table
//	fleet host remove <name>                 - Remove a server
//	fleet domain create <domain>             - Register a domain
//	fleet domain list                        - Show registered domains
//	fleet domain dns add <domain> <t> <v>    - Add a DNS record
//	fleet domain dns list <domain>           - Show a domain's records
//	fleet deploy <host...>                   - Build deployment bundles
//	fleet auth set                           - Store the deploy credential
//	fleet version                            - Build information
//
// Aliases shorten the common ones: ha, hl, hosts, hr, dc, dl.
//
// # Flag Handling
//
// Global flags (-V/--verbose, -c/--config, -q/--no-color) are recognized at
// any argument position and stripped before routing; handlers read them from
// the Invocation. Per-command value flags are declared at registration so the
// extractor knows which flags consume the token after them. Undeclared
// dash-prefixed tokens pass through as boolean flags.
//
// # State
//
// All state lives in fleet.yaml. Commands load it through internal/config,
// which searches the --config path, the working directory and its parents,
// then ~/.config/fleet/config.yaml.
package cli
