package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
)

// newAddCommand creates the add command for appending tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Due       string
		Priority  int16
		Category  int16
		Completed bool
	}

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Append a task",
		Long: `Append a task to the end of the task file.

Due dates accept YYYY-MM-DD, YYYY-MM-DD HH:MM, RFC 3339, today,
tomorrow or +Nd (N days from today).

Examples:
  # Add a task
  tasklist add "Write report"

  # Add a task with priority, category and due date
  tasklist add "Renew passport" -p 2 -c 1 -d 2026-05-01

  # Record something already done
  tasklist add "Book flights" --done`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Description: args[0],
				Due:         opts.Due,
				Priority:    opts.Priority,
				Category:    opts.Category,
				Completed:   opts.Completed,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", out.Index, out.Task.Description)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "Due date")
	cmd.Flags().Int16VarP(&opts.Priority, "priority", "p", 0, "Priority")
	cmd.Flags().Int16VarP(&opts.Category, "category", "c", 0, "Category")
	cmd.Flags().BoolVar(&opts.Completed, "done", false, "Mark the task as completed")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		SortBy     string
		Descending bool
		Pending    bool
		Overdue    bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the tasks in the task file.

Output columns:
  INDEX, DONE, PRIORITY, CATEGORY, DUE, DESCRIPTION

INDEX is the position in the file and is what other commands take.
Sorting only changes the display; the file keeps its order. Tasks with
equal keys keep their file order.

Sort keys: ` + sortKeyNames() + `

Examples:
  # List in file order
  tasklist list

  # Most urgent first
  tasklist list --sort due

  # Highest priority first, hiding completed tasks
  tasklist list --sort priority --desc --pending`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				SortBy:      opts.SortBy,
				Descending:  opts.Descending,
				HideDone:    opts.Pending,
				OnlyOverdue: opts.Overdue,
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
				return nil
			}
			printTaskTable(cmd.OutOrStdout(), out.Tasks, c.Config.DateLayout)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.SortBy, "sort", "s", "", "Sort by key")
	cmd.Flags().BoolVar(&opts.Descending, "desc", false, "Sort in descending order")
	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Hide completed tasks")
	cmd.Flags().BoolVar(&opts.Overdue, "overdue", false, "Only open tasks past their due date")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		JSON bool
	}

	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Display one task",
		Long: `Display every field of the task at the given index.

Examples:
  tasklist show 0

  # Output in JSON format
  tasklist show 0 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{Index: index})
			if err != nil {
				return err
			}

			if opts.JSON {
				type jsonTask struct {
					Due         *time.Time `json:"due,omitempty"`
					Description string     `json:"description"`
					Index       int        `json:"index"`
					Priority    int16      `json:"priority"`
					Category    int16      `json:"category"`
					Completed   bool       `json:"completed"`
				}
				jt := jsonTask{
					Index:       out.Index,
					Description: out.Task.Description,
					Priority:    out.Task.Priority,
					Category:    out.Task.Category,
					Completed:   out.Task.Completed,
				}
				if !out.Task.DueDate.IsZero() {
					due := out.Task.DueDate
					jt.Due = &due
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(jt)
			}

			printTaskDetail(cmd.OutOrStdout(), out.Index, out.Task, c.Config.DateLayout)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Due         string
		Priority    int16
		Category    int16
	}

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Change fields of a task",
		Long: `Change fields of the task at the given index.

Only the flags that are given are changed. An empty --due clears the
due date.

Examples:
  tasklist edit 2 --priority 1
  tasklist edit 0 --description "Write the final report" --due +3d
  tasklist edit 4 --due ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditTaskInput{Index: index}
			if cmd.Flags().Changed("description") {
				input.Description = &opts.Description
			}
			if cmd.Flags().Changed("due") {
				input.Due = &opts.Due
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = &opts.Priority
			}
			if cmd.Flags().Changed("category") {
				input.Category = &opts.Category
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d: %s\n", index, out.Task.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "description", "", "New description")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "New due date")
	cmd.Flags().Int16VarP(&opts.Priority, "priority", "p", 0, "New priority")
	cmd.Flags().Int16VarP(&opts.Category, "category", "c", 0, "New category")

	return cmd
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	var reopen bool

	cmd := &cobra.Command{
		Use:   "done <index>",
		Short: "Mark a task as completed",
		Long: `Mark the task at the given index as completed.

Use --reopen to clear the completion flag instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{Index: index, Reopen: reopen})
			if err != nil {
				return err
			}

			state := "completed"
			if reopen {
				state = "open"
			}
			if out.Changed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d is now %s\n", index, state)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %d is already %s\n", index, state)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reopen, "reopen", false, "Mark the task as not completed")

	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a task",
		Long: `Remove the task at the given index.

Tasks after it move up by one, so their indexes change.

Examples:
  tasklist rm 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			uc := c.RemoveTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.RemoveTaskInput{Index: index})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed task %d: %s\n", index, out.Removed.Description)
			return nil
		},
	}

	return cmd
}

// newSearchCommand creates the search command.
func newSearchCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Due         string
		Priority    int16
		Category    int16
		Completed   bool
	}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find tasks by field value",
		Long: `Find tasks whose fields equal the given values.

Every given flag must match. --description matches the whole
description exactly and selects at most the first matching task.
--due matches the exact instant, so a date-only value matches tasks
due at midnight of that day.

Examples:
  tasklist search --priority 1
  tasklist search --category 2 --completed=false
  tasklist search --description "Write report"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input usecase.SearchTasksInput
			if cmd.Flags().Changed("description") {
				input.Description = &opts.Description
			}
			if cmd.Flags().Changed("due") {
				input.Due = &opts.Due
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = &opts.Priority
			}
			if cmd.Flags().Changed("category") {
				input.Category = &opts.Category
			}
			if cmd.Flags().Changed("completed") {
				input.Completed = &opts.Completed
			}

			uc := c.SearchTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No matching tasks")
				return nil
			}
			printTaskTable(cmd.OutOrStdout(), out.Tasks, c.Config.DateLayout)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "description", "", "Exact description")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "Due date")
	cmd.Flags().Int16VarP(&opts.Priority, "priority", "p", 0, "Priority")
	cmd.Flags().Int16VarP(&opts.Category, "category", "c", 0, "Category")
	cmd.Flags().BoolVar(&opts.Completed, "completed", false, "Completion flag")

	return cmd
}

// parseIndex parses a task index argument.
func parseIndex(s string) (int, error) {
	s = strings.TrimPrefix(s, "#")
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be a number", s)
	}
	return index, nil
}

func sortKeyNames() string {
	keys := domain.AllSortKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// printTaskTable prints tasks as an aligned table with a styled header row.
// The INDEX column shows store indexes.
func printTaskTable(w io.Writer, tasks []usecase.IndexedTask, dateLayout string) {
	rows := make([]*domain.Task, len(tasks))
	for i, it := range tasks {
		rows[i] = it.Task
	}

	var buf strings.Builder
	domain.PrintTasks(&buf, rows, func(i int) int { return tasks[i].Index }, dateLayout)

	// Style after alignment so escape codes don't skew column widths.
	header, body, _ := strings.Cut(buf.String(), "\n")
	style := lipgloss.NewRenderer(w).NewStyle().Bold(true).Underline(true)
	_, _ = fmt.Fprintln(w, style.Render(header))
	_, _ = io.WriteString(w, body)
}

// printTaskDetail prints every field of one task.
func printTaskDetail(w io.Writer, index int, t *domain.Task, dateLayout string) {
	status := "open"
	if t.Completed {
		status = "completed"
	}
	_, _ = fmt.Fprintf(w, "Task %d\n", index)
	_, _ = fmt.Fprintf(w, "  Description: %s\n", domain.DisplayText(t.Description))
	_, _ = fmt.Fprintf(w, "  Priority:    %d\n", t.Priority)
	_, _ = fmt.Fprintf(w, "  Category:    %d\n", t.Category)
	_, _ = fmt.Fprintf(w, "  Due:         %s\n", domain.FormatDue(t.DueDate, dateLayout))
	_, _ = fmt.Fprintf(w, "  Status:      %s\n", status)
}
