package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/tasklist/internal/domain"
)

// Fixed column widths; the description takes the rest.
const (
	colIndex    = 5
	colDone     = 4
	colPriority = 8
	colCategory = 8
	colDue      = 16
	minDescCol  = 20
)

// chrome is the number of lines used around the table.
const chrome = 6

func columns(width int) []table.Column {
	desc := width - (colIndex + colDone + colPriority + colCategory + colDue) - 16
	desc = max(desc, minDescCol)
	return []table.Column{
		{Title: "#", Width: colIndex},
		{Title: "DONE", Width: colDone},
		{Title: "PRIORITY", Width: colPriority},
		{Title: "CATEGORY", Width: colCategory},
		{Title: "DUE", Width: colDue},
		{Title: "DESCRIPTION", Width: desc},
	}
}

func (m *Model) updateLayoutSizes() {
	m.table.SetColumns(columns(m.width))
	helpLines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			helpLines = max(helpLines, len(col))
		}
	}
	m.table.SetHeight(max(m.height-chrome-helpLines, 3))
}

func (m *Model) updateRows() {
	layout := domain.DefaultDateLayout
	if m.container != nil && m.container.Config.DateLayout != "" {
		layout = m.container.Config.DateLayout
	}

	rows := make([]table.Row, 0, len(m.tasks))
	for _, it := range m.tasks {
		done := ""
		if it.Task.Completed {
			done = "x"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(it.Index),
			done,
			strconv.Itoa(int(it.Task.Priority)),
			strconv.Itoa(int(it.Task.Category)),
			domain.FormatDue(it.Task.DueDate, layout),
			domain.DisplayText(it.Task.Description),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Empty.Render("No tasks"))
	} else {
		b.WriteString(m.table.View())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
	}

	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	return m.styles.App.Render(b.String())
}

func (m *Model) headerView() string {
	path := ""
	if m.container != nil && m.container.Store != nil {
		path = m.container.Store.Path()
	}

	order := "file order"
	if k := m.sortKey(); k != "" {
		order = "by " + string(k)
		if m.descending {
			order += ", descending"
		}
	}
	info := fmt.Sprintf("%s  %d of %d tasks, %s", path, len(m.tasks), m.total, order)
	if m.hideDone {
		info += ", hiding completed"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Header.Render("tasklist"),
		"  ",
		m.styles.HeaderInfo.Render(info),
	)
}
