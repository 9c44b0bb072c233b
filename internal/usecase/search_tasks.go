package usecase

import (
	"context"
	"time"

	"github.com/runoshun/tasklist/internal/domain"
)

// SearchTasksInput contains the search criteria. Nil fields are ignored and
// the remaining ones are combined with AND. A Description search returns at
// most one task, the first exact match.
// Fields are ordered to minimize memory padding.
type SearchTasksInput struct {
	Description *string
	Due         *string
	Priority    *int16
	Category    *int16
	Completed   *bool
}

// SearchTasksOutput contains the matching tasks in stored order.
type SearchTasksOutput struct {
	Tasks []IndexedTask
}

// SearchTasks is the use case for finding tasks by field value.
type SearchTasks struct {
	store domain.TaskStore
	clock domain.Clock
}

// NewSearchTasks creates a new SearchTasks use case.
func NewSearchTasks(store domain.TaskStore, clock domain.Clock) *SearchTasks {
	return &SearchTasks{
		store: store,
		clock: clock,
	}
}

// Execute runs the search.
func (uc *SearchTasks) Execute(_ context.Context, in SearchTasksInput) (*SearchTasksOutput, error) {
	var due time.Time
	if in.Due != nil {
		var err error
		if due, err = domain.ParseDate(*in.Due, uc.clock.Now()); err != nil {
			return nil, err
		}
	}

	tasks, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	result := tasks
	if in.Description != nil {
		t, ok := tasks.SearchByDescription(*in.Description)
		if !ok {
			return &SearchTasksOutput{Tasks: []IndexedTask{}}, nil
		}
		result = domain.NewTaskCollectionOf(t)
	}
	if in.Priority != nil {
		result = result.SearchByPriority(*in.Priority)
	}
	if in.Due != nil {
		result = result.SearchByDueDate(due)
	}
	if in.Completed != nil {
		result = result.SearchByCompleted(*in.Completed)
	}
	if in.Category != nil {
		result = result.SearchByCategory(*in.Category)
	}

	return &SearchTasksOutput{Tasks: indexSubset(tasks, result)}, nil
}
