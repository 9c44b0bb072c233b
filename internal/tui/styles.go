package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Selection lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Selection: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	HeaderInfo lipgloss.Style
	Footer     lipgloss.Style
	ErrorMsg   lipgloss.Style
	Empty      lipgloss.Style
	Table      table.Styles
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Colors.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(Colors.Primary)
	ts.Selected = ts.Selected.
		Foreground(Colors.Selection).
		Bold(true)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Footer: lipgloss.NewStyle().
			MarginTop(1),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),
		Table: ts,
	}
}
