// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/tasklist/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskStore is a test double for domain.TaskStore.
// Fields are ordered to minimize memory padding.
type MockTaskStore struct {
	Tasks     *domain.TaskCollection
	LoadErr   error
	SaveErr   error
	StorePath string
	SaveCount int
}

// Ensure MockTaskStore implements the store ports.
var (
	_ domain.TaskStore        = (*MockTaskStore)(nil)
	_ domain.StoreInitializer = (*MockTaskStore)(nil)
)

// NewMockTaskStore creates a MockTaskStore holding tasks in order.
func NewMockTaskStore(tasks ...*domain.Task) *MockTaskStore {
	return &MockTaskStore{
		Tasks:     domain.NewTaskCollectionOf(tasks...),
		StorePath: "tasks.txt",
	}
}

// Load returns the held collection.
func (m *MockTaskStore) Load() (*domain.TaskCollection, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Tasks == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, m.StorePath)
	}
	return m.Tasks, nil
}

// Save replaces the held collection.
func (m *MockTaskStore) Save(tasks *domain.TaskCollection) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = tasks
	m.SaveCount++
	return nil
}

// Update applies fn to the held collection and saves it.
func (m *MockTaskStore) Update(fn func(*domain.TaskCollection) error) error {
	tasks, err := m.Load()
	if err != nil {
		return err
	}
	if err := fn(tasks); err != nil {
		return err
	}
	return m.Save(tasks)
}

// Path returns the configured path.
func (m *MockTaskStore) Path() string {
	return m.StorePath
}

// Initialize creates an empty collection when none is held.
func (m *MockTaskStore) Initialize() (bool, error) {
	if m.Tasks != nil {
		return false, nil
	}
	m.Tasks = domain.NewTaskCollection()
	return true, nil
}

// MockTaskFiles is an in-memory domain.TaskFiles keyed by path.
type MockTaskFiles struct {
	Files   map[string]*domain.TaskCollection
	SaveErr error
}

// NewMockTaskFiles creates an empty MockTaskFiles.
func NewMockTaskFiles() *MockTaskFiles {
	return &MockTaskFiles{Files: make(map[string]*domain.TaskCollection)}
}

// LoadFile returns the collection stored under path.
func (m *MockTaskFiles) LoadFile(path string) (*domain.TaskCollection, error) {
	c, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}
	return c, nil
}

// SaveFile stores the collection under path.
func (m *MockTaskFiles) SaveFile(path string, tasks *domain.TaskCollection) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Files[path] = tasks
	return nil
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// Levels returns the level of every recorded entry.
func (m *MockLogger) Levels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e.Level)
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured Config or the default one.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	Local      domain.ConfigInfo
	Global     domain.ConfigInfo
	LocalPath  string
	GlobalPath string
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo { return m.Local }

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.Global }

// InitLocalConfig marks the local config as existing.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config) (string, error) {
	return m.init(&m.Local, m.LocalPath, cfg)
}

// InitGlobalConfig marks the global config as existing.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) (string, error) {
	return m.init(&m.Global, m.GlobalPath, cfg)
}

func (m *MockConfigManager) init(info *domain.ConfigInfo, path string, cfg *domain.Config) (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	if info.Exists {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}
	*info = domain.ConfigInfo{Path: path, Content: domain.RenderConfigTemplate(cfg), Exists: true}
	return path, nil
}
