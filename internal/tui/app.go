// Package tui provides a terminal browser over the task file.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	tasks []usecase.IndexedTask

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	table  table.Model

	// Numeric state (smaller types last)
	total      int
	sortMode   int // 0 keeps file order; otherwise 1 + index into domain.AllSortKeys
	width      int
	height     int
	descending bool
	hideDone   bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	styles := DefaultStyles()
	t := table.New(
		table.WithColumns(columns(0)),
		table.WithFocused(true),
		table.WithStyles(styles.Table),
	)

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		table:     t,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// sortKey returns the active sort key, or "" for file order.
func (m *Model) sortKey() domain.SortKey {
	if m.sortMode == 0 {
		return ""
	}
	return domain.AllSortKeys()[m.sortMode-1]
}

// loadTasks returns a command that loads tasks with the current view settings.
func (m *Model) loadTasks() tea.Cmd {
	input := usecase.ListTasksInput{
		SortBy:     string(m.sortKey()),
		Descending: m.descending,
		HideDone:   m.hideDone,
	}
	uc := m.container.ListTasksUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), input)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Total: out.Total}
	}
}

// toggleTask returns a command that flips the completion flag of it.
func (m *Model) toggleTask(it usecase.IndexedTask) tea.Cmd {
	uc := m.container.CompleteTaskUseCase()
	input := usecase.CompleteTaskInput{Index: it.Index, Reopen: it.Task.Completed}
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), input)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{Index: input.Index, Completed: out.Task.Completed}
	}
}

// SelectedTask returns the currently selected task.
func (m *Model) SelectedTask() (usecase.IndexedTask, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tasks) {
		return usecase.IndexedTask{}, false
	}
	return m.tasks[i], true
}
