package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasklist/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		m.err = nil
		m.tasks = msg.Tasks
		m.total = msg.Total
		m.updateRows()
		return m, nil

	case MsgTaskToggled:
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.Top):
		m.table.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.table.GotoBottom()

	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.SelectedTask(); ok {
			return m, m.toggleTask(it)
		}

	case key.Matches(msg, m.keys.Sort):
		m.sortMode = (m.sortMode + 1) % (len(domain.AllSortKeys()) + 1)
		return m, m.loadTasks()
	case key.Matches(msg, m.keys.Reverse):
		m.descending = !m.descending
		return m, m.loadTasks()
	case key.Matches(msg, m.keys.ToggleShowAll):
		m.hideDone = !m.hideDone
		return m, m.loadTasks()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayoutSizes()
	}
	return m, nil
}
