// Package shunt routes command-line invocations to registered handlers.
//
// A Router maps multi-word command names and their aliases to handlers,
// corrects typos with edit-distance suggestions, organizes commands into
// categories for help output, and separates raw tokens into positional
// arguments, boolean flags, and value flags. Build a Router at startup,
// register everything, then dispatch:
//
//	r := shunt.NewRouter()
//	r.SetName("fleet")
//	r.SetVersion("fleet 1.0.0")
//	r.Global("-V", "--verbose", false, "Enable verbose output")
//	r.MustRegister("domain create", []string{"dc"}, []string{"--ip-address"}, &CreateDomain{})
//	r.Execute()
//
// # Routing
//
// Lookup prefers the longest registered prefix of the input tokens, so
// "domain create x" runs "domain create" with "x" as a positional argument.
// When nothing matches exactly, the closest registered names within an
// edit-distance threshold are offered as suggestions; a suggestion is never
// executed on the user's behalf.
//
// # Invocations
//
// Handlers implement Command and receive an Invocation carrying positional
// arguments, boolean flags, value flags, and global flag results, plus
// Require and Validate helpers for input checking.
//
// # Help
//
// The first token "help" (or "-h") renders help instead of executing: the
// root index, a category listing, or a single command's screen built from
// its HelpScreen. Rendering is deterministic plain text.
//
// # Exit codes
//
//	0  handler succeeded, or any help screen was rendered
//	1  handler returned an error
//	2  command not found, with or without suggestions
package shunt
