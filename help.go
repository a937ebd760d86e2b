package shunt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shunt-cli/shunt/ui"
)

// HelpItem is one named entry on a help screen.
type HelpItem struct {
	Name        string
	Description string
}

// HelpScreen describes a command for help output. Params and Flags render in
// the order they were added.
type HelpScreen struct {
	Title       string
	Usage       string
	Description string
	Params      []HelpItem
	Flags       []HelpItem
	Examples    []string
}

// NewHelpScreen creates a help screen with the given title, usage line, and
// description.
func NewHelpScreen(title, usage, description string) *HelpScreen {
	return &HelpScreen{
		Title:       title,
		Usage:       usage,
		Description: description,
	}
}

// AddParam appends a parameter to the PARAMETERS section.
func (h *HelpScreen) AddParam(name, description string) {
	h.Params = append(h.Params, HelpItem{Name: name, Description: description})
}

// AddFlag appends a flag to the FLAGS section.
func (h *HelpScreen) AddFlag(name, description string) {
	h.Flags = append(h.Flags, HelpItem{Name: name, Description: description})
}

// AddExample appends an example invocation to the EXAMPLES section.
func (h *HelpScreen) AddExample(example string) {
	h.Examples = append(h.Examples, example)
}

// Help renderers write plain, deterministic text: rendering the same screen
// twice yields byte-identical output. Presentation styling belongs to
// handlers, not to help.

// RenderCommandHelp writes a command's help screen: one usage line per name
// (canonical first, then each alias), description, parameters, flags, and
// examples.
func (r *Router) RenderCommandHelp(w io.Writer, desc *Descriptor) {
	h := desc.Command.Help()

	fmt.Fprint(w, ui.Banner(h.Title))
	fmt.Fprint(w, "USAGE\n\n")
	fmt.Fprintf(w, "    %s\n", h.Usage)
	for _, alias := range desc.Aliases {
		fmt.Fprintf(w, "    %s\n", strings.Replace(h.Usage, desc.Name, alias, 1))
	}
	fmt.Fprint(w, "\n")

	if h.Description != "" {
		fmt.Fprint(w, "DESCRIPTION\n\n")
		fmt.Fprint(w, ui.WrapIndent(h.Description, ui.WrapWidth, "    ", "    "))
		fmt.Fprint(w, "\n\n")
	}

	if len(h.Params) > 0 {
		fmt.Fprint(w, "PARAMETERS\n\n")
		fmt.Fprint(w, ui.KeyValues(helpRows(h.Params)))
	}
	if len(h.Flags) > 0 {
		fmt.Fprint(w, "FLAGS\n\n")
		fmt.Fprint(w, ui.KeyValues(helpRows(h.Flags)))
	}
	if len(h.Examples) > 0 {
		fmt.Fprint(w, "EXAMPLES\n\n")
		for _, ex := range h.Examples {
			fmt.Fprintf(w, "    %s\n\n", ex)
		}
	}

	fmt.Fprint(w, "-- END --\n")
}

// RenderIndex writes the top-level listing: category paths when any
// categories are registered, otherwise every command, sorted either way.
func (r *Router) RenderIndex(w io.Writer) {
	title := "Available Commands"
	if r.name != "" {
		title = r.name + " - Available Commands"
	}
	fmt.Fprint(w, ui.Banner(title))
	fmt.Fprint(w, ui.Wrap("Below shows all available commands. Run any command with 'help' as the first argument to view full details on the command.", ui.WrapWidth))
	fmt.Fprint(w, "\n\n")
	fmt.Fprint(w, "AVAILABLE COMMANDS\n\n")

	var rows [][2]string
	if len(r.catOrder) > 0 {
		paths := append([]string(nil), r.catOrder...)
		sort.Strings(paths)
		for _, p := range paths {
			rows = append(rows, [2]string{p, r.categories[p].Description})
		}
	} else {
		names := append([]string(nil), r.names...)
		sort.Strings(names)
		for _, n := range names {
			rows = append(rows, [2]string{n, r.commands[n].Command.Help().Description})
		}
	}
	fmt.Fprint(w, ui.KeyValues(rows))
	fmt.Fprint(w, "-- END --\n")
}

// RenderCategoryHelp writes a category's help screen: description, immediate
// subcategories in registration order, and the commands under the category
// path sorted by name with the path prefix stripped. An empty category
// renders an empty listing.
func (r *Router) RenderCategoryHelp(w io.Writer, cat *Category) {
	fmt.Fprint(w, ui.Banner(cat.Title))

	if cat.Description != "" {
		fmt.Fprint(w, "DESCRIPTION\n\n")
		fmt.Fprint(w, ui.WrapIndent(cat.Description, ui.WrapWidth, "    ", "    "))
		fmt.Fprint(w, "\n\n")
	}

	listing, _ := r.ChildrenOf(cat.Path)
	if len(listing.Subcategories) > 0 {
		var rows [][2]string
		for _, sub := range listing.Subcategories {
			rows = append(rows, [2]string{sub.Name, sub.Title})
		}
		fmt.Fprint(w, "SUBCATEGORIES\n\n")
		fmt.Fprint(w, ui.KeyValues(rows))
	}

	var rows [][2]string
	for _, d := range listing.Commands {
		name := strings.TrimPrefix(d.Name, cat.Path+" ")
		rows = append(rows, [2]string{name, d.Command.Help().Description})
	}
	fmt.Fprint(w, "AVAILABLE COMMANDS\n\n")
	fmt.Fprint(w, ui.KeyValues(rows))
	fmt.Fprint(w, "-- END --\n")
}

// RenderSuggestions writes the near-miss listing for a command that did not
// resolve. Suggestions are offered to the user, never executed.
func (r *Router) RenderSuggestions(w io.Writer, attempted string, suggestions []string) {
	fmt.Fprintf(w, "✗ Command '%s' not found\n\n", attempted)
	fmt.Fprint(w, "Did you mean:\n\n")
	for _, s := range suggestions {
		fmt.Fprintf(w, "    %s\n", s)
	}
	fmt.Fprint(w, "\nRun 'help <command>' for details on any command.\n")
}

// RenderNotFound writes the generic not-found message followed by the root
// listing.
func (r *Router) RenderNotFound(w io.Writer, attempted string) {
	fmt.Fprintf(w, "✗ Command '%s' not found\n\n", attempted)
	r.RenderIndex(w)
}

func helpRows(list []HelpItem) [][2]string {
	rows := make([][2]string, 0, len(list))
	for _, it := range list {
		rows = append(rows, [2]string{it.Name, it.Description})
	}
	return rows
}
