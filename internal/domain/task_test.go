package domain

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	due := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	task := NewTask("write report", 2, due, true, 7)

	assert.Equal(t, "write report", task.Description)
	assert.Equal(t, int16(2), task.Priority)
	assert.True(t, task.DueDate.Equal(due))
	assert.True(t, task.Completed)
	assert.Equal(t, int16(7), task.Category)
}

func TestTask_AcceptsAnyValues(t *testing.T) {
	task := NewTask("", -32768, time.Time{}, false, 32767)

	assert.Equal(t, int16(-32768), task.Priority)
	assert.Equal(t, int16(32767), task.Category)
	assert.Empty(t, task.Description)
}

func TestTask_Clone(t *testing.T) {
	orig := NewTask("a", 1, time.Time{}, false, 1)
	c := orig.Clone()
	c.Description = "b"

	assert.Equal(t, "a", orig.Description)
	assert.NotSame(t, orig, c)
}

func TestTask_WriteAndParseRecord(t *testing.T) {
	tests := []struct {
		name string
		task *Task
	}{
		{
			name: "plain",
			task: NewTask("buy milk", 1, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), false, 3),
		},
		{
			name: "tabs and newlines in description",
			task: NewTask("line1\nline2\twith tab", 5, time.Date(2026, 1, 2, 15, 4, 5, 123456789, time.UTC), true, 0),
		},
		{
			name: "quotes and unicode",
			task: NewTask(`say "hi" to 世界`, -1, time.Date(2025, 12, 31, 23, 59, 0, 0, time.FixedZone("JST", 9*3600)), false, -4),
		},
		{
			name: "zero due date and empty description",
			task: NewTask("", 0, time.Time{}, false, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.task.Write(&buf))

			line := buf.String()
			assert.True(t, strings.HasSuffix(line, "\n"))
			assert.Equal(t, 1, strings.Count(line, "\n"), "record must occupy exactly one line")

			got, err := ParseRecord(line)
			require.NoError(t, err)
			assert.Equal(t, tt.task.Description, got.Description)
			assert.Equal(t, tt.task.Priority, got.Priority)
			assert.Equal(t, tt.task.Completed, got.Completed)
			assert.Equal(t, tt.task.Category, got.Category)
			assert.True(t, tt.task.DueDate.Equal(got.DueDate), "due = %v, want %v", got.DueDate, tt.task.DueDate)
		})
	}
}

func TestTask_WriteLayout(t *testing.T) {
	var buf bytes.Buffer
	task := NewTask("pay rent", 2, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), true, 4)
	require.NoError(t, task.Write(&buf))

	assert.Equal(t, "2\t2026-02-01T00:00:00Z\ttrue\t4\t\"pay rent\"\n", buf.String())
}

func TestParseRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "1\t2026-01-01T00:00:00Z\tfalse"},
		{"bad priority", "high\t2026-01-01T00:00:00Z\tfalse\t1\t\"x\""},
		{"priority overflow", "40000\t2026-01-01T00:00:00Z\tfalse\t1\t\"x\""},
		{"bad date", "1\t01/01/2026\tfalse\t1\t\"x\""},
		{"bad completed", "1\t2026-01-01T00:00:00Z\tmaybe\t1\t\"x\""},
		{"bad category", "1\t2026-01-01T00:00:00Z\tfalse\tone\t\"x\""},
		{"unquoted description", "1\t2026-01-01T00:00:00Z\tfalse\t1\tx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.line)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrInvalidRecord), "err = %v", err)
		})
	}
}

func TestTask_String(t *testing.T) {
	task := NewTask("ship it", 1, time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC), true, 2)
	assert.Equal(t, "[x] ship it (priority 1, category 2, due 2026-05-06)", task.String())

	open := NewTask("later", 0, time.Time{}, false, 0)
	assert.Equal(t, "[ ] later (priority 0, category 0, due -)", open.String())
}
