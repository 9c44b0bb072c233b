package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
)

// newTUICommand creates the tui command for launching the task browser.
// Running tasklist without arguments does the same.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse tasks interactively",
		Long: `Open a terminal browser over the task file.
Tasks can be sorted, filtered and marked done from the browser.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}
