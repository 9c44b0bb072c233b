package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Path    string // Source; the extension selects the format
	Replace bool   // Replace the stored tasks instead of appending
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Imported int
	Total    int
}

// ImportTasks reads tasks from another file into the store.
type ImportTasks struct {
	store  domain.TaskStore
	files  domain.TaskFiles
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(store domain.TaskStore, files domain.TaskFiles, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		store:  store,
		files:  files,
		logger: logger,
	}
}

// Execute loads in.Path and appends (or replaces) the stored tasks.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	incoming, err := uc.files.LoadFile(in.Path)
	if err != nil {
		return nil, fmt.Errorf("import tasks: %w", err)
	}

	out := &ImportTasksOutput{Imported: incoming.Len()}
	err = uc.store.Update(func(tasks *domain.TaskCollection) error {
		if in.Replace {
			tasks.Clear()
		}
		for _, t := range incoming.Tasks() {
			tasks.Add(t)
		}
		out.Total = tasks.Len()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import tasks: %w", err)
	}

	uc.logger.Info("import", fmt.Sprintf("imported %d tasks from %s", out.Imported, in.Path))
	return out, nil
}
