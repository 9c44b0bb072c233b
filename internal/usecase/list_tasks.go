package usecase

import (
	"context"
	"time"

	"github.com/runoshun/tasklist/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	SortBy      string // Sort key name (empty keeps stored order)
	Descending  bool
	HideDone    bool // Omit completed tasks
	OnlyOverdue bool // Only open tasks whose due date has passed
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []IndexedTask
	Total int // Number of tasks in the store
}

// ListTasks is the use case for listing tasks. Sorting only affects the
// returned view; the stored order is unchanged.
type ListTasks struct {
	store domain.TaskStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.TaskStore, clock domain.Clock) *ListTasks {
	return &ListTasks{
		store: store,
		clock: clock,
	}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	var key domain.SortKey
	if in.SortBy != "" {
		k, err := domain.ParseSortKey(in.SortBy)
		if err != nil {
			return nil, err
		}
		key = k
	}

	tasks, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	view := indexAll(tasks)
	if in.HideDone || in.OnlyOverdue {
		view = filterIndexed(view, func(t *domain.Task) bool {
			if in.HideDone && t.Completed {
				return false
			}
			if in.OnlyOverdue && !isOverdue(t, uc.clock.Now()) {
				return false
			}
			return true
		})
	}

	if key != "" {
		if err := sortIndexed(view, key, in.Descending); err != nil {
			return nil, err
		}
	}

	return &ListTasksOutput{Tasks: view, Total: tasks.Len()}, nil
}

func filterIndexed(tasks []IndexedTask, keep func(*domain.Task) bool) []IndexedTask {
	var result []IndexedTask
	for _, it := range tasks {
		if keep(it.Task) {
			result = append(result, it)
		}
	}
	return result
}

// isOverdue reports whether an open task with a due date is past it.
func isOverdue(t *domain.Task, now time.Time) bool {
	return !t.Completed && !t.DueDate.IsZero() && t.DueDate.Before(now)
}
