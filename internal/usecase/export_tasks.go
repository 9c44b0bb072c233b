package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Path string // Destination; the extension selects the format
}

// ExportTasksOutput contains the result of exporting tasks.
type ExportTasksOutput struct {
	Count int
}

// ExportTasks writes the stored collection to another file.
type ExportTasks struct {
	store  domain.TaskStore
	files  domain.TaskFiles
	logger domain.Logger
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(store domain.TaskStore, files domain.TaskFiles, logger domain.Logger) *ExportTasks {
	return &ExportTasks{
		store:  store,
		files:  files,
		logger: logger,
	}
}

// Execute copies every stored task to in.Path.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	if err := uc.files.SaveFile(in.Path, tasks); err != nil {
		return nil, fmt.Errorf("export tasks: %w", err)
	}
	uc.logger.Info("export", fmt.Sprintf("exported %d tasks to %s", tasks.Len(), in.Path))
	return &ExportTasksOutput{Count: tasks.Len()}, nil
}
