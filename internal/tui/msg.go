package tui

import "github.com/runoshun/tasklist/internal/usecase"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the store.
type MsgTasksLoaded struct {
	Tasks []usecase.IndexedTask
	Total int
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskToggled is sent after a task's completion flag changed.
type MsgTaskToggled struct {
	Index     int
	Completed bool
}

func (MsgTaskToggled) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
