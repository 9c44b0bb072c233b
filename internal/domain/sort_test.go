package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptions(c *TaskCollection) []string {
	var out []string
	for _, t := range c.Tasks() {
		out = append(out, t.Description)
	}
	return out
}

func sortFixture() *TaskCollection {
	return NewTaskCollectionOf(
		NewTask("a", 3, day(4), true, 2),
		NewTask("b", 1, day(2), false, 1),
		NewTask("c", 2, day(3), true, 1),
		NewTask("d", 1, day(1), false, 2),
	)
}

func TestTaskCollection_SortByPriority_Stable(t *testing.T) {
	c := sortFixture()
	c.SortByPriority()
	assert.Equal(t, []string{"b", "d", "c", "a"}, descriptions(c))
}

func TestTaskCollection_SortByDueDate(t *testing.T) {
	c := sortFixture()
	c.SortByDueDate()
	assert.Equal(t, []string{"d", "b", "c", "a"}, descriptions(c))
}

func TestTaskCollection_SortByCompletion(t *testing.T) {
	c := sortFixture()
	c.SortByCompletion()
	assert.Equal(t, []string{"b", "d", "a", "c"}, descriptions(c))
}

func TestTaskCollection_SortByCategory(t *testing.T) {
	c := sortFixture()
	c.SortByCategory()
	assert.Equal(t, []string{"b", "c", "a", "d"}, descriptions(c))
}

func TestTaskCollection_SortDescendingKeepsTiesStable(t *testing.T) {
	c := sortFixture()
	require.NoError(t, c.Sort(SortKeyPriority, true))
	assert.Equal(t, []string{"a", "c", "b", "d"}, descriptions(c))
}

func TestTaskCollection_SortInvalidKey(t *testing.T) {
	c := sortFixture()
	err := c.Sort(SortKey("colour"), false)
	assert.ErrorIs(t, err, ErrInvalidSortKey)
	assert.Equal(t, []string{"a", "b", "c", "d"}, descriptions(c))
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"priority", SortKeyPriority},
		{"PRIO", SortKeyPriority},
		{"due", SortKeyDueDate},
		{"due-date", SortKeyDueDate},
		{"done", SortKeyCompletion},
		{"completed", SortKeyCompletion},
		{" category ", SortKeyCategory},
	}
	for _, tt := range tests {
		got, err := ParseSortKey(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSortKey("size")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}
