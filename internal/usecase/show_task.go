package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	Index int
}

// ShowTaskOutput contains the result of showing a task.
type ShowTaskOutput struct {
	Task  *domain.Task
	Index int
}

// ShowTask is the use case for displaying one task.
type ShowTask struct {
	store domain.TaskStore
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store domain.TaskStore) *ShowTask {
	return &ShowTask{store: store}
}

// Execute returns the task at in.Index.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	tasks, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	task, err := tasks.Get(in.Index)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &ShowTaskOutput{Task: task, Index: in.Index}, nil
}
