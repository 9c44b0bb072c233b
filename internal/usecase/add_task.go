package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Description string // Task description (required)
	Due         string // Due date as accepted by domain.ParseDate (optional)
	Priority    int16
	Category    int16
	Completed   bool
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  *domain.Task
	Index int // Position of the new task
}

// AddTask is the use case for appending a task to the store.
type AddTask struct {
	store  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.TaskStore, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute appends a task built from in and saves the store.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Description == "" {
		return nil, domain.ErrEmptyDescription
	}

	due, err := domain.ParseDate(in.Due, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(in.Description, in.Priority, due, in.Completed, in.Category)
	var index int
	err = uc.store.Update(func(tasks *domain.TaskCollection) error {
		tasks.Add(task)
		index = tasks.Len() - 1
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	uc.logger.Info("task", fmt.Sprintf("added task %d: %s", index, task.Description))
	return &AddTaskOutput{Task: task, Index: index}, nil
}
