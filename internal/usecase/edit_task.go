package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/tasklist/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// Nil fields are left unchanged.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Description *string
	Due         *string // Empty string clears the due date
	Priority    *int16
	Category    *int16
	Index       int
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task
}

// EditTask is the use case for changing fields of a stored task.
type EditTask struct {
	store  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store domain.TaskStore, clock domain.Clock, logger domain.Logger) *EditTask {
	return &EditTask{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute applies the given field changes to the task at in.Index.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Description == nil && in.Due == nil && in.Priority == nil && in.Category == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Description != nil && *in.Description == "" {
		return nil, domain.ErrEmptyDescription
	}

	var due time.Time
	if in.Due != nil {
		var err error
		if due, err = domain.ParseDate(*in.Due, uc.clock.Now()); err != nil {
			return nil, err
		}
	}

	var task *domain.Task
	err := uc.store.Update(func(tasks *domain.TaskCollection) error {
		t, err := tasks.Get(in.Index)
		if err != nil {
			return err
		}
		if in.Description != nil {
			t.Description = *in.Description
		}
		if in.Due != nil {
			t.DueDate = due
		}
		if in.Priority != nil {
			t.Priority = *in.Priority
		}
		if in.Category != nil {
			t.Category = *in.Category
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("edit task: %w", err)
	}

	uc.logger.Info("task", fmt.Sprintf("edited task %d", in.Index))
	return &EditTaskOutput{Task: task}, nil
}
