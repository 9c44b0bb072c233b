package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey selects the task field a collection is ordered by.
type SortKey string

// Sort keys.
const (
	SortKeyPriority   SortKey = "priority"
	SortKeyDueDate    SortKey = "due"
	SortKeyCompletion SortKey = "completed"
	SortKeyCategory   SortKey = "category"
)

// AllSortKeys returns all valid sort keys.
func AllSortKeys() []SortKey {
	return []SortKey{SortKeyPriority, SortKeyDueDate, SortKeyCompletion, SortKeyCategory}
}

// ParseSortKey converts a user supplied name into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "priority", "prio":
		return SortKeyPriority, nil
	case "due", "due-date", "duedate":
		return SortKeyDueDate, nil
	case "completed", "completion", "done":
		return SortKeyCompletion, nil
	case "category", "cat":
		return SortKeyCategory, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// CompareTasks returns the ascending comparison function for key.
func CompareTasks(key SortKey) (func(a, b *Task) int, error) {
	switch key {
	case SortKeyPriority:
		return func(a, b *Task) int { return cmp.Compare(a.Priority, b.Priority) }, nil
	case SortKeyDueDate:
		return func(a, b *Task) int { return a.DueDate.Compare(b.DueDate) }, nil
	case SortKeyCompletion:
		return func(a, b *Task) int { return compareBool(a.Completed, b.Completed) }, nil
	case SortKeyCategory:
		return func(a, b *Task) int { return cmp.Compare(a.Category, b.Category) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// Sort reorders the collection in place by key. The sort is stable: tasks
// with equal keys keep their relative order in both directions.
func (c *TaskCollection) Sort(key SortKey, descending bool) error {
	compare, err := CompareTasks(key)
	if err != nil {
		return err
	}
	if descending {
		asc := compare
		compare = func(a, b *Task) int { return asc(b, a) }
	}
	slices.SortStableFunc(c.tasks, compare)
	return nil
}

// SortByPriority orders tasks by ascending priority.
func (c *TaskCollection) SortByPriority() {
	_ = c.Sort(SortKeyPriority, false)
}

// SortByDueDate orders tasks by ascending due date.
func (c *TaskCollection) SortByDueDate() {
	_ = c.Sort(SortKeyDueDate, false)
}

// SortByCompletion places open tasks before completed ones.
func (c *TaskCollection) SortByCompletion() {
	_ = c.Sort(SortKeyCompletion, false)
}

// SortByCategory orders tasks by ascending category.
func (c *TaskCollection) SortByCategory() {
	_ = c.Sort(SortKeyCategory, false)
}
