// Package cli provides the command-line interface for tasklist.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/tui"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupFile  = "file"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tasklist.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var storePath string

	root := &cobra.Command{
		Use:   "tasklist",
		Short: "Keep a list of tasks in a plain file",
		Long: `tasklist keeps an ordered list of tasks in a single file.

Each task has a description, a priority, a due date, a category and a
completion flag. Tasks are addressed by their position in the file,
starting at 0.

The file format follows the extension: .toml and .yaml/.yml files are
structured documents, anything else holds one record per line.

Running tasklist without a command opens the task browser.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if cmd.Flags().Changed("file") {
				c.UseStorePath(storePath)
			}

			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVarP(&storePath, "file", "f", "", "Task file (default: store.path from config, else tasks.txt)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupFile, Title: "File Commands:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	searchCmd := newSearchCommand(c)
	searchCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// File commands
	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupFile

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupFile

	// Add subcommands
	root.AddCommand(
		initCmd,
		configCmd,
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		doneCmd,
		rmCmd,
		searchCmd,
		tuiCmd,
		exportCmd,
		importCmd,
	)

	return root
}

// errNoTerminal is returned when the browser is started without a terminal.
var errNoTerminal = errors.New("the task browser needs a terminal; use 'tasklist list' instead")

// launchTUI runs the task browser until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return fmt.Errorf("no task store available")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
