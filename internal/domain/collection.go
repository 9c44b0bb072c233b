package domain

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"time"
)

// TaskCollection is an ordered sequence of tasks.
// Insertion order is preserved and duplicates are allowed.
//
// Search results share *Task values with the collection they came from:
// mutating a task returned by a search mutates the original. Use Task.Clone
// when value semantics are wanted.
//
// A TaskCollection is not safe for concurrent use.
type TaskCollection struct {
	tasks []*Task
}

// NewTaskCollection returns an empty collection.
func NewTaskCollection() *TaskCollection {
	return &TaskCollection{tasks: []*Task{}}
}

// NewTaskCollectionOf returns a collection holding tasks in the given order.
func NewTaskCollectionOf(tasks ...*Task) *TaskCollection {
	c := NewTaskCollection()
	for _, t := range tasks {
		c.Add(t)
	}
	return c
}

// Add appends t to the end of the collection. It always succeeds.
func (c *TaskCollection) Add(t *Task) bool {
	c.tasks = append(c.tasks, t)
	return true
}

// Get returns the task at index i.
func (c *TaskCollection) Get(i int) (*Task, error) {
	if err := c.checkIndex(i); err != nil {
		return nil, err
	}
	return c.tasks[i], nil
}

// Remove deletes the task at index i, shifting later tasks left.
func (c *TaskCollection) Remove(i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.tasks = slices.Delete(c.tasks, i, i+1)
	return nil
}

func (c *TaskCollection) checkIndex(i int) error {
	if i < 0 || i >= len(c.tasks) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(c.tasks))
	}
	return nil
}

// Len returns the number of tasks.
func (c *TaskCollection) Len() int {
	return len(c.tasks)
}

// Tasks returns the tasks in order. The slice is a copy; the tasks are shared.
func (c *TaskCollection) Tasks() []*Task {
	return slices.Clone(c.tasks)
}

// Clear removes every task.
func (c *TaskCollection) Clear() {
	c.tasks = []*Task{}
}

// SearchByDescription returns the first task whose description equals text
// exactly. The returned task is the live element of the collection.
func (c *TaskCollection) SearchByDescription(text string) (*Task, bool) {
	for _, t := range c.tasks {
		if t.Description == text {
			return t, true
		}
	}
	return nil, false
}

// SearchByPriority returns every task with priority p.
func (c *TaskCollection) SearchByPriority(p int16) *TaskCollection {
	return c.filter(func(t *Task) bool { return t.Priority == p })
}

// SearchByDueDate returns every task due at the same instant as d.
func (c *TaskCollection) SearchByDueDate(d time.Time) *TaskCollection {
	return c.filter(func(t *Task) bool { return t.DueDate.Equal(d) })
}

// SearchByCompleted returns every task whose completion flag equals done.
func (c *TaskCollection) SearchByCompleted(done bool) *TaskCollection {
	return c.filter(func(t *Task) bool { return t.Completed == done })
}

// SearchByCategory returns every task with category cat.
func (c *TaskCollection) SearchByCategory(cat int16) *TaskCollection {
	return c.filter(func(t *Task) bool { return t.Category == cat })
}

// filter returns a new collection with the matching tasks in original order.
func (c *TaskCollection) filter(match func(*Task) bool) *TaskCollection {
	out := NewTaskCollection()
	for _, t := range c.tasks {
		if match(t) {
			out.Add(t)
		}
	}
	return out
}

// ReadFrom replaces the contents of c with the records read from r.
// On error c is left empty.
func (c *TaskCollection) ReadFrom(r io.Reader) (int64, error) {
	c.Clear()

	var n int64
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		n += int64(len(line)) + 1
		if isSkippableRecord(line) {
			continue
		}
		t, err := ParseRecord(line)
		if err != nil {
			c.Clear()
			return n, fmt.Errorf("line %d: %w", lineNo, err)
		}
		c.Add(t)
	}
	if err := scanner.Err(); err != nil {
		c.Clear()
		return n, fmt.Errorf("read records: %w", err)
	}
	return n, nil
}

// maxRecordSize bounds a single record line.
const maxRecordSize = 1 << 20

// WriteTo writes every task as a record, in collection order.
func (c *TaskCollection) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for _, t := range c.tasks {
		if err := t.Write(cw); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
