package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Index  int
	Reopen bool // Clear the completion flag instead of setting it
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task    *domain.Task
	Changed bool // False when the task already had the requested state
}

// CompleteTask is the use case for toggling a task's completion flag.
type CompleteTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(store domain.TaskStore, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		store:  store,
		logger: logger,
	}
}

// Execute marks the task at in.Index as completed (or open with Reopen).
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	want := !in.Reopen
	out := &CompleteTaskOutput{}
	err := uc.store.Update(func(tasks *domain.TaskCollection) error {
		t, err := tasks.Get(in.Index)
		if err != nil {
			return err
		}
		out.Task = t
		out.Changed = t.Completed != want
		t.Completed = want
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}

	if out.Changed {
		uc.logger.Info("task", fmt.Sprintf("task %d completed=%t", in.Index, want))
	}
	return out, nil
}
