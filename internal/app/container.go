// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/config"
	"github.com/runoshun/tasklist/internal/infra/filestore"
	"github.com/runoshun/tasklist/internal/infra/logging"
	"github.com/runoshun/tasklist/internal/usecase"
)

// Config holds the resolved runtime settings.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings    []string         // Unknown keys found in config files
	WorkDir     string           // Directory the command runs in
	StorePath   string           // Task file
	LogDir      string           // Directory holding logs/tasklist.log ("" disables logging)
	DateLayout  string           // Layout for due dates in output
	StoreFormat filestore.Format // Forced format (FormatAuto uses the extension)
}

// newConfig resolves runtime settings from the loaded configuration.
func newConfig(workDir, globalDir string, cfg *domain.Config) (Config, error) {
	format, err := filestore.ParseFormat(cfg.Store.Format)
	if err != nil {
		return Config{}, err
	}

	storePath := cfg.Store.Path
	if storePath == "" {
		storePath = domain.DefaultStorePath
	}
	if !filepath.IsAbs(storePath) {
		storePath = filepath.Join(workDir, storePath)
	}

	logDir := cfg.Log.Dir
	if logDir == "" {
		logDir = globalDir
	}

	layout := cfg.Display.DateLayout
	if layout == "" {
		layout = domain.DefaultDateLayout
	}

	return Config{
		Warnings:    cfg.Warnings,
		WorkDir:     workDir,
		StorePath:   storePath,
		LogDir:      logDir,
		DateLayout:  layout,
		StoreFormat: format,
	}, nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store            domain.TaskStore
	StoreInitializer domain.StoreInitializer
	Files            domain.TaskFiles
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager
	Logger           domain.Logger

	// Pointer fields
	fileLog *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(workDir string) (*Container, error) {
	configLoader := config.NewLoader(workDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg, err := newConfig(workDir, configLoader.GlobalDir(), appConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	fileLog := logging.New(cfg.LogDir, logging.ParseLevel(appConfig.Log.Level))
	store := filestore.New(cfg.StorePath, cfg.StoreFormat, fileLog)

	return &Container{
		Store:            store,
		StoreInitializer: store,
		Files:            store,
		Clock:            domain.RealClock{},
		ConfigLoader:     configLoader,
		ConfigManager:    config.NewManager(workDir),
		Logger:           fileLog,
		fileLog:          fileLog,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, store domain.TaskStore, storeInit domain.StoreInitializer, files domain.TaskFiles, clock domain.Clock, logger domain.Logger) *Container {
	if cfg.DateLayout == "" {
		cfg.DateLayout = domain.DefaultDateLayout
	}
	return &Container{
		Store:            store,
		StoreInitializer: storeInit,
		Files:            files,
		Clock:            clock,
		Logger:           logger,
		Config:           cfg,
	}
}

// UseStorePath rebinds the task store to path, keeping the configured format.
// Containers built by NewWithDeps keep their injected store.
func (c *Container) UseStorePath(path string) {
	if c.fileLog == nil {
		return
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Config.WorkDir, path)
	}
	store := filestore.New(path, c.Config.StoreFormat, c.fileLog)
	c.Store = store
	c.StoreInitializer = store
	c.Files = store
	c.Config.StorePath = path
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.fileLog == nil {
		return nil
	}
	return c.fileLog.Close()
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer, c.Store)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Clock, c.Logger)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Store, c.Logger)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store, c.Clock, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Store, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store, c.Clock)
}

// SearchTasksUseCase returns a new SearchTasks use case.
func (c *Container) SearchTasksUseCase() *usecase.SearchTasks {
	return usecase.NewSearchTasks(c.Store, c.Clock)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Store, c.Files, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Store, c.Files, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
