package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	Index int // Position of the task to remove
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Removed *domain.Task
}

// RemoveTask is the use case for deleting a task by position.
type RemoveTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(store domain.TaskStore, logger domain.Logger) *RemoveTask {
	return &RemoveTask{
		store:  store,
		logger: logger,
	}
}

// Execute removes the task at in.Index. Later tasks move down by one.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	var removed *domain.Task
	err := uc.store.Update(func(tasks *domain.TaskCollection) error {
		t, err := tasks.Get(in.Index)
		if err != nil {
			return err
		}
		removed = t
		return tasks.Remove(in.Index)
	})
	if err != nil {
		return nil, fmt.Errorf("remove task: %w", err)
	}

	uc.logger.Info("task", fmt.Sprintf("removed task %d: %s", in.Index, removed.Description))
	return &RemoveTaskOutput{Removed: removed}, nil
}
