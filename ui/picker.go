package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickItem is one selectable entry in the interactive picker.
type PickItem struct {
	Title string   // Display name
	Desc  string   // Secondary line shown under the title
	Keys  []string // Extra values the filter matches against
}

type pickEntry struct {
	item PickItem
}

func (e pickEntry) Title() string       { return e.item.Title }
func (e pickEntry) Description() string { return e.item.Desc }
func (e pickEntry) FilterValue() string {
	values := append([]string{e.item.Title}, e.item.Keys...)
	return strings.Join(values, " ")
}

type pickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var pickerKeys = pickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// PickerModel is a Bubble Tea model for selecting one item from a list.
type PickerModel struct {
	list     list.Model
	selected *PickItem
	quitting bool
}

// NewPickerModel creates a picker over the given items.
func NewPickerModel(title string, items []PickItem) PickerModel {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = pickEntry{item: it}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).
		BorderForeground(ColorSecondary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorMuted)

	l := list.New(entries, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	return PickerModel{list: l}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The filter input owns keystrokes while it is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, pickerKeys.Enter):
			if entry, ok := m.list.SelectedItem().(pickEntry); ok {
				item := entry.item
				m.selected = &item
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, pickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the chosen item, or nil when the picker was cancelled.
func (m PickerModel) Selected() *PickItem { return m.selected }

// Pick displays an interactive picker and returns the selected item, or nil
// when the user cancels with q, esc, or ctrl+c. A single item is returned
// without prompting.
func Pick(title string, items []PickItem) (*PickItem, error) {
	return PickWithIO(title, items, os.Stdout, os.Stdin)
}

// PickWithIO runs the picker against custom input and output streams.
func PickWithIO(title string, items []PickItem, output io.Writer, input io.Reader) (*PickItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items to pick from")
	}
	if len(items) == 1 {
		return &items[0], nil
	}

	p := tea.NewProgram(
		NewPickerModel(title, items),
		tea.WithOutput(output),
		tea.WithInput(input),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	if m, ok := finalModel.(PickerModel); ok {
		return m.Selected(), nil
	}
	return nil, nil
}
