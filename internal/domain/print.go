package domain

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"
)

// Print writes a readable table of every task, in order, to w.
func (c *TaskCollection) Print(w io.Writer) {
	PrintTasks(w, c.tasks, nil, DefaultDateLayout)
}

// PrintTasks writes tasks as an aligned table. The INDEX column of row i
// shows index(i), or i itself when index is nil.
func PrintTasks(w io.Writer, tasks []*Task, index func(i int) int, dateLayout string) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "INDEX\tDONE\tPRIORITY\tCATEGORY\tDUE\tDESCRIPTION")
	for i, t := range tasks {
		n := i
		if index != nil {
			n = index(i)
		}
		done := "-"
		if t.Completed {
			done = "x"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\n",
			n,
			done,
			t.Priority,
			t.Category,
			FormatDue(t.DueDate, dateLayout),
			DisplayText(t.Description),
		)
	}
}

// DisplayText returns s ready for a single table cell or output line.
// Text holding control characters or invalid UTF-8 is shown Go-quoted.
func DisplayText(s string) string {
	if utf8.ValidString(s) && !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}
	return strconv.Quote(s)
}
