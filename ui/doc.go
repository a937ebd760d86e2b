// Package ui provides the terminal display and input helpers that command
// handlers call into for presentation: styled status lines, tables,
// spinners, progress bars, prompts, and password entry.
//
// The package carries no routing logic. Help screens use only the plain
// text helpers (Wrap, KeyValues, Banner) so their output stays
// deterministic; everything else styles output with Lip Gloss.
//
// # Components Overview
//
//	Spinner        - Animated status indicator for long-running operations
//	InlineProgress - Animated progress bar with label and percentage
//	Tables         - Static table rendering via the Bubbles table component
//	Prompts        - Confirm, Input, and Choose with non-terminal fallbacks
//	Password       - Masked password entry and double-entry for new passwords
//	Pick           - Interactive filterable list selection (Bubble Tea)
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and skipped items
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//	ColorSecondary (blue)   - In-progress indicators
//
// Use DisableColors() to switch to monochrome output (for --no-color flag);
// NO_COLOR in the environment is honored automatically.
//
// # Spinner Usage
//
//	s := ui.NewSpinner("Deploying")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail() or s.Skip()
//
// The spinner handles terminal output, clearing lines, and timing display.
package ui
