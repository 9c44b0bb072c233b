package domain

import "time"

// TaskStore persists the working collection.
type TaskStore interface {
	// Load reads the collection. A missing store yields ErrFileNotFound.
	Load() (*TaskCollection, error)

	// Save replaces the stored collection with tasks.
	Save(tasks *TaskCollection) error

	// Update loads the collection, applies fn and saves the result.
	// Nothing is saved when fn returns an error.
	Update(fn func(*TaskCollection) error) error

	// Path returns the location of the store.
	Path() string
}

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates an empty store if it doesn't exist.
	// It reports whether a new store was created.
	Initialize() (bool, error)
}

// TaskFiles reads and writes collections at arbitrary paths.
// The file format is chosen from the path extension.
type TaskFiles interface {
	LoadFile(path string) (*TaskCollection, error)
	SaveFile(path string, tasks *TaskCollection) error
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (global + local).
	Load() (*Config, error)
}

// ConfigManager creates and inspects config files.
type ConfigManager interface {
	GetLocalConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo
	InitLocalConfig(cfg *Config) (string, error)
	InitGlobalConfig(cfg *Config) (string, error)
}

// ConfigInfo describes one config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger records diagnostics that are not returned to the caller.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(string, string)  {}
func (NopLogger) Debug(string, string) {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
