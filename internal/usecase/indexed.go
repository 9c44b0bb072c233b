// Package usecase contains the application use cases.
package usecase

import (
	"slices"

	"github.com/runoshun/tasklist/internal/domain"
)

// IndexedTask pairs a task with its position in the stored collection.
type IndexedTask struct {
	Task  *domain.Task
	Index int
}

// indexAll returns every task of c with its position.
func indexAll(c *domain.TaskCollection) []IndexedTask {
	tasks := c.Tasks()
	out := make([]IndexedTask, len(tasks))
	for i, t := range tasks {
		out[i] = IndexedTask{Task: t, Index: i}
	}
	return out
}

// indexSubset maps the members of a search result back to their positions
// in the source collection. Search results share task pointers with source.
func indexSubset(source, subset *domain.TaskCollection) []IndexedTask {
	positions := make(map[*domain.Task]int, source.Len())
	for i, t := range source.Tasks() {
		if _, seen := positions[t]; !seen {
			positions[t] = i
		}
	}

	out := make([]IndexedTask, 0, subset.Len())
	for _, t := range subset.Tasks() {
		if i, ok := positions[t]; ok {
			out = append(out, IndexedTask{Task: t, Index: i})
		}
	}
	return out
}

// sortIndexed orders tasks stably by key.
func sortIndexed(tasks []IndexedTask, key domain.SortKey, descending bool) error {
	compare, err := domain.CompareTasks(key)
	if err != nil {
		return err
	}
	slices.SortStableFunc(tasks, func(a, b IndexedTask) int {
		if descending {
			return compare(b.Task, a.Task)
		}
		return compare(a.Task, b.Task)
	})
	return nil
}
