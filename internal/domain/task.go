// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Task represents one unit of work held in a TaskCollection.
// Fields are ordered to minimize memory padding.
type Task struct {
	DueDate     time.Time `toml:"due" yaml:"due"`                 // Due date
	Description string    `toml:"description" yaml:"description"` // Free text, matched exactly by search
	Priority    int16     `toml:"priority" yaml:"priority"`       // Any value accepted
	Category    int16     `toml:"category" yaml:"category"`       // Any value accepted
	Completed   bool      `toml:"completed" yaml:"completed"`     // Completion flag
}

// NewTask creates a task from all of its fields. No validation is performed.
func NewTask(description string, priority int16, due time.Time, completed bool, category int16) *Task {
	return &Task{
		Description: description,
		Priority:    priority,
		DueDate:     due,
		Completed:   completed,
		Category:    category,
	}
}

// Clone returns a copy of the task that shares no state with t.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// String returns a one-line human readable rendering.
func (t *Task) String() string {
	state := " "
	if t.Completed {
		state = "x"
	}
	return fmt.Sprintf("[%s] %s (priority %d, category %d, due %s)",
		state, t.Description, t.Priority, t.Category, FormatDue(t.DueDate, DefaultDateLayout))
}

// Record layout:
//
//	priority \t due \t completed \t category \t "description"
//
// due is RFC 3339 with nanoseconds and the description is a Go-quoted string,
// so tabs and newlines inside it never break the one-line-per-record rule.
const (
	recordSeparator = "\t"
	recordFields    = 5
	recordTimeFmt   = time.RFC3339Nano
)

// RecordHeader is written as the first line of record files.
const RecordHeader = "# tasklist v1"

// Write appends exactly one record for this task to w.
func (t *Task) Write(w io.Writer) error {
	line := strings.Join([]string{
		strconv.FormatInt(int64(t.Priority), 10),
		t.DueDate.Format(recordTimeFmt),
		strconv.FormatBool(t.Completed),
		strconv.FormatInt(int64(t.Category), 10),
		strconv.Quote(t.Description),
	}, recordSeparator)
	_, err := io.WriteString(w, line+"\n")
	return err
}

// ParseRecord parses one record produced by Write.
// The trailing newline, if present, is ignored.
func ParseRecord(line string) (*Task, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.SplitN(line, recordSeparator, recordFields)
	if len(parts) != recordFields {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrInvalidRecord, recordFields, len(parts))
	}

	priority, err := strconv.ParseInt(parts[0], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: priority: %v", ErrInvalidRecord, err)
	}
	due, err := time.Parse(recordTimeFmt, parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: due date: %v", ErrInvalidRecord, err)
	}
	completed, err := strconv.ParseBool(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: completed: %v", ErrInvalidRecord, err)
	}
	category, err := strconv.ParseInt(parts[3], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: category: %v", ErrInvalidRecord, err)
	}
	description, err := strconv.Unquote(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: description: %v", ErrInvalidRecord, err)
	}

	return NewTask(description, int16(priority), due, completed, int16(category)), nil
}

// isSkippableRecord reports whether a line carries no record.
func isSkippableRecord(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
