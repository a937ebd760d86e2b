package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderWidth is the width of the header divider.
const HeaderWidth = 50

// HeaderInfo carries the fields shown in the branded header.
type HeaderInfo struct {
	Name    string // Program name
	Version string // Version string, e.g. "v1.2.0"
	Tagline string // Optional one-line tagline
}

// RenderHeader renders the program name, version, optional tagline, and a
// divider line.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	versionStyle := lipgloss.NewStyle().
		Foreground(ColorInfo)
	taglineStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)
	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	var output strings.Builder
	output.WriteString(titleStyle.Render(info.Name))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}

// PrintHeader prints the styled header to stdout.
func PrintHeader(info HeaderInfo) {
	fmt.Print(RenderHeader(info))
}
