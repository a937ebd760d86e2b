package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status line helpers used by command handlers. Each prints a styled symbol
// followed by the message.

// Success writes a green checkmark line.
func Success(w io.Writer, format string, args ...interface{}) {
	status(w, SymbolSuccess, ColorSuccess, format, args...)
}

// Error writes a red failure line.
func Error(w io.Writer, format string, args ...interface{}) {
	status(w, SymbolFail, ColorError, format, args...)
}

// Warn writes a yellow warning line.
func Warn(w io.Writer, format string, args ...interface{}) {
	status(w, SymbolWarn, ColorWarning, format, args...)
}

// Info writes a cyan informational line.
func Info(w io.Writer, format string, args ...interface{}) {
	status(w, SymbolPending, ColorInfo, format, args...)
}

func status(w io.Writer, symbol string, color lipgloss.Color, format string, args ...interface{}) {
	style := lipgloss.NewStyle().Foreground(color)
	fmt.Fprintf(w, "%s %s\n", style.Render(symbol), fmt.Sprintf(format, args...))
}

// SuccessList writes a success line followed by indented detail lines, such
// as the files an operation touched, and a trailing blank line.
func SuccessList(w io.Writer, message string, details []string) {
	Success(w, "%s", message)
	for _, d := range details {
		fmt.Fprintf(w, "    %s\n", d)
	}
	fmt.Fprint(w, "\n")
}
