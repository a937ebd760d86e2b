package ui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ClearScreen erases the terminal and moves the cursor home.
func ClearScreen(w io.Writer) {
	out := termenv.NewOutput(w)
	out.ClearScreen()
}

// IsTerminal reports whether the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
