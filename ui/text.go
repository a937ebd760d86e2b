package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// WrapWidth is the default line width for wrapped help and message text.
const WrapWidth = 75

// Wrap word-wraps text to the given width. Existing newlines are kept.
func Wrap(text string, width int) string {
	return wordwrap.String(text, width)
}

// WrapIndent word-wraps text so every line fits in width including its
// indent, prefixing the first line with initial and continuation lines with
// subsequent. The two prefixes are expected to have equal width.
func WrapIndent(text string, width int, initial, subsequent string) string {
	inner := width - len([]rune(subsequent))
	if inner < 1 {
		inner = 1
	}
	lines := strings.Split(wordwrap.String(text, inner), "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = initial + line
		} else {
			lines[i] = subsequent + line
		}
	}
	return strings.Join(lines, "\n")
}

// KeyValues renders an ordered two-column listing: four-space indent, keys
// padded to the longest key plus four, values word-wrapped with continuation
// lines aligned under the value column. Ends with a blank line. Used for
// help parameters, flags, and listing screens.
func KeyValues(rows [][2]string) string {
	size := 0
	for _, row := range rows {
		if n := len([]rune(row[0])) + 8; n > size {
			size = n
		}
	}
	indent := strings.Repeat(" ", size)

	var b strings.Builder
	for _, row := range rows {
		left := "    " + row[0] + strings.Repeat(" ", size-4-len([]rune(row[0])))
		b.WriteString(WrapIndent(row[1], WrapWidth, left, indent))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Banner renders the dashed plain-text header that opens help screens.
func Banner(title string) string {
	line := strings.Repeat("-", 30)
	return fmt.Sprintf("%s\n-- %s\n%s\n\n", line, title, line)
}

// PadRight pads a string with spaces to the given display width, accounting
// for ANSI escape codes.
func PadRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// StripANSI removes ANSI escape codes from a string for length calculation.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
