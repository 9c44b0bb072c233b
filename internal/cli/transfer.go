package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write all tasks to another file",
		Long: `Write every task to another file, replacing it if it exists.

The format follows the extension of <path>:
  .toml        TOML document with a [[tasks]] table array
  .yaml, .yml  YAML document with a tasks list
  other        one record per line

Examples:
  tasklist export backup.yaml
  tasklist -f tasks.toml export tasks.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ExportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportTasksInput{Path: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", out.Count, args[0])
			return nil
		},
	}

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <path>...",
		Short: "Append tasks from other files",
		Long: `Append the tasks of other files to the task file, in their order.

The format follows the extension of each <path>, as for export.
A <path> may be a glob pattern; ** matches any number of directories.
Matches are imported in lexical order.
Use --replace to drop the current tasks first.

Examples:
  tasklist import backup.yaml
  tasklist import old.txt --replace
  tasklist import 'archive/**/*.toml'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPaths(args)
			if err != nil {
				return err
			}

			uc := c.ImportTasksUseCase()
			for i, path := range paths {
				out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
					Path:    path,
					Replace: replace && i == 0,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks from %s (%d total)\n", out.Imported, path, out.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the current tasks instead of appending")

	return cmd
}

// expandPaths resolves glob patterns in args. Plain paths are kept as given
// so that a missing file is reported by the import itself.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		slices.Sort(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}
