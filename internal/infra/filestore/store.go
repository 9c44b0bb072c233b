// Package filestore loads and saves task collections as flat files.
package filestore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/tasklist/internal/domain"
)

const logCategory = "store"

// Load creates a collection from the file at path.
// A missing file yields domain.ErrFileNotFound and a nil collection.
// A failure to close the file after a successful read is logged and does not
// change the result.
func Load(path string, format Format, logger domain.Logger) (*domain.TaskCollection, error) {
	logger = orNop(logger)
	c, err := codecFor(FormatForPath(path, format))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // Path is chosen by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer closeAfterRead(f, path, logger)

	tasks := domain.NewTaskCollection()
	if err := c.decode(bufio.NewReader(f), tasks); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug(logCategory, fmt.Sprintf("loaded %d tasks from %s", tasks.Len(), path))
	return tasks, nil
}

// Save writes tasks to path, creating or truncating the file.
// Tasks are encoded before the file is opened, so a collection the format
// cannot hold leaves an existing file untouched. The write itself is not
// atomic: a failure part way through may leave a partial file.
func Save(path string, format Format, tasks *domain.TaskCollection, logger domain.Logger) (err error) {
	logger = orNop(logger)
	c, err := codecFor(FormatForPath(path, format))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if encErr := c.encode(&buf, tasks); encErr != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrFileWrite, path, encErr)
	}

	f, err := os.Create(path) //nolint:gosec // Path is chosen by the user
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrFileWrite, path, err)
	}
	defer closeAfterWrite(f, path, logger, &err)

	if _, writeErr := buf.WriteTo(f); writeErr != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrFileWrite, path, writeErr)
	}
	logger.Debug(logCategory, fmt.Sprintf("saved %d tasks to %s", tasks.Len(), path))
	return nil
}

func orNop(logger domain.Logger) domain.Logger {
	if logger == nil {
		return domain.NopLogger{}
	}
	return logger
}

// closeAfterRead closes a file that was only read from.
func closeAfterRead(c io.Closer, path string, logger domain.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn(logCategory, fmt.Sprintf("%v: %s: %v", domain.ErrFileClose, path, err))
	}
}

// closeAfterWrite closes a written file. A close failure becomes the result
// only when *errp is nil; otherwise the earlier error wins and the close
// failure is logged.
func closeAfterWrite(c io.Closer, path string, logger domain.Logger, errp *error) {
	cerr := c.Close()
	if cerr == nil {
		return
	}
	cerr = fmt.Errorf("%w: %s: %v", domain.ErrFileClose, path, cerr)
	if *errp != nil {
		logger.Error(logCategory, cerr.Error())
		return
	}
	*errp = cerr
}

// Store is a task file at a fixed path.
// Fields are ordered to minimize memory padding.
type Store struct {
	logger   domain.Logger
	path     string
	lockPath string
	format   Format
}

// Ensure Store implements the domain ports.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
	_ domain.TaskFiles        = (*Store)(nil)
)

// New creates a new Store for the given file path.
// The file does not need to exist; Initialize creates it.
func New(path string, format Format, logger domain.Logger) *Store {
	return &Store{
		logger:   orNop(logger),
		path:     path,
		lockPath: path + ".lock",
		format:   format,
	}
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task file.
func (s *Store) Load() (*domain.TaskCollection, error) {
	var tasks *domain.TaskCollection
	err := s.withLock(syscall.LOCK_SH, func() error {
		var err error
		tasks, err = Load(s.path, s.format, s.logger)
		return err
	})
	return tasks, err
}

// Save replaces the task file with tasks.
func (s *Store) Save(tasks *domain.TaskCollection) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		return Save(s.path, s.format, tasks, s.logger)
	})
}

// Update loads the task file, applies fn and saves the result under one
// exclusive lock. Nothing is written when fn returns an error.
func (s *Store) Update(fn func(*domain.TaskCollection) error) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		tasks, err := Load(s.path, s.format, s.logger)
		if err != nil {
			return err
		}
		if err := fn(tasks); err != nil {
			return err
		}
		return Save(s.path, s.format, tasks, s.logger)
	})
}

// Initialize creates an empty task file if it doesn't exist.
func (s *Store) Initialize() (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("create directory: %w", err)
	}
	if err := s.Save(domain.NewTaskCollection()); err != nil {
		return false, err
	}
	s.logger.Info(logCategory, "initialized "+s.path)
	return true, nil
}

// LoadFile reads a collection from any path; the format follows the extension.
func (s *Store) LoadFile(path string) (*domain.TaskCollection, error) {
	return Load(path, FormatAuto, s.logger)
}

// SaveFile writes a collection to any path; the format follows the extension.
func (s *Store) SaveFile(path string, tasks *domain.TaskCollection) error {
	return Save(path, FormatAuto, tasks, s.logger)
}

// withLock runs fn while holding a lock of lockType on the lock file.
func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}
