package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() *domain.TaskCollection {
	return domain.NewTaskCollectionOf(
		domain.NewTask("write tests", 1, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), false, 1),
		domain.NewTask("review\tpatch", 2, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), true, 2),
		domain.NewTask("write tests", 3, time.Time{}, false, 1),
	)
}

func assertSameTasks(t *testing.T, want, got *domain.TaskCollection) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	for i := 0; i < want.Len(); i++ {
		w, _ := want.Get(i)
		g, _ := got.Get(i)
		assert.Equal(t, w.Description, g.Description, "task %d", i)
		assert.Equal(t, w.Priority, g.Priority, "task %d", i)
		assert.True(t, w.DueDate.Equal(g.DueDate), "task %d due = %v, want %v", i, g.DueDate, w.DueDate)
		assert.Equal(t, w.Completed, g.Completed, "task %d", i)
		assert.Equal(t, w.Category, g.Category, "task %d", i)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"tasks.txt", "tasks.dat", "tasks.toml", "tasks.yaml", "tasks.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleTasks()

			require.NoError(t, Save(path, FormatAuto, want, nil))

			got, err := Load(path, FormatAuto, nil)
			require.NoError(t, err)
			assertSameTasks(t, want, got)
		})
	}
}

func TestSaveLoad_EmptyCollection(t *testing.T) {
	for _, name := range []string{"empty.txt", "empty.toml", "empty.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, FormatAuto, domain.NewTaskCollection(), nil))

			got, err := Load(path, FormatAuto, nil)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Len())
		})
	}
}

func TestSave_RecordFileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, Save(path, FormatAuto, sampleTasks(), nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, domain.RecordHeader, lines[0])
	assert.Equal(t, "1\t2026-03-01T09:00:00Z\tfalse\t1\t\"write tests\"", lines[1])
	assert.Equal(t, "2\t2026-03-02T00:00:00Z\ttrue\t2\t\"review\\tpatch\"", lines[2])
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, Save(path, FormatAuto, sampleTasks(), nil))

	one := domain.NewTaskCollectionOf(domain.NewTask("only", 0, time.Time{}, false, 0))
	require.NoError(t, Save(path, FormatAuto, one, nil))

	got, err := Load(path, FormatAuto, nil)
	require.NoError(t, err)
	assertSameTasks(t, one, got)
}

func TestSave_ExplicitFormatIgnoresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, Save(path, FormatYAML, sampleTasks(), nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "tasks:"), string(content))

	got, err := Load(path, FormatYAML, nil)
	require.NoError(t, err)
	assertSameTasks(t, sampleTasks(), got)
}

func TestLoad_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	got, err := Load(path, FormatAuto, nil)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domain.ErrFileNotFound), "err = %v", err)
}

func TestLoad_InvalidContent(t *testing.T) {
	tests := map[string]string{
		"bad.txt":  "not a record\n",
		"bad.toml": "tasks = 3\n",
		"bad.yaml": "tasks: [1, 2\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			got, err := Load(path, FormatAuto, nil)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, domain.ErrInvalidRecord)
		})
	}
}

func TestSave_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "tasks.txt")

	err := Save(path, FormatAuto, sampleTasks(), nil)
	assert.ErrorIs(t, err, domain.ErrFileWrite)
}

func TestSaveLoad_InvalidUTF8Description(t *testing.T) {
	invalid := func() *domain.TaskCollection {
		return domain.NewTaskCollectionOf(domain.NewTask("bad\xffutf8", 1, time.Time{}, false, 0))
	}

	for _, name := range []string{"tasks.txt", "tasks.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, FormatAuto, invalid(), nil))

			got, err := Load(path, FormatAuto, nil)
			require.NoError(t, err)
			assertSameTasks(t, invalid(), got)
		})
	}

	t.Run("tasks.toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.toml")
		require.NoError(t, Save(path, FormatAuto, sampleTasks(), nil))

		err := Save(path, FormatAuto, invalid(), nil)
		assert.ErrorIs(t, err, domain.ErrFileWrite)

		// The rejected save leaves the previous contents loadable.
		got, err := Load(path, FormatAuto, nil)
		require.NoError(t, err)
		assertSameTasks(t, sampleTasks(), got)
	})
}

type failingCloser struct{ err error }

func (f failingCloser) Close() error { return f.err }

func TestCloseAfterRead_LogsFailure(t *testing.T) {
	logger := &testutil.MockLogger{}

	closeAfterRead(failingCloser{err: errors.New("disk gone")}, "tasks.txt", logger)

	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "WARN", logger.Entries[0].Level)
	assert.Contains(t, logger.Entries[0].Msg, "cannot close file")
	assert.Contains(t, logger.Entries[0].Msg, "disk gone")
}

func TestCloseAfterWrite(t *testing.T) {
	t.Run("close failure reported when nothing else failed", func(t *testing.T) {
		logger := &testutil.MockLogger{}
		var err error

		closeAfterWrite(failingCloser{err: errors.New("quota")}, "tasks.txt", logger, &err)

		assert.ErrorIs(t, err, domain.ErrFileClose)
		assert.Empty(t, logger.Entries)
	})

	t.Run("earlier failure wins", func(t *testing.T) {
		logger := &testutil.MockLogger{}
		earlier := errors.New("encode failed")
		err := earlier

		closeAfterWrite(failingCloser{err: errors.New("quota")}, "tasks.txt", logger, &err)

		assert.Same(t, earlier, err)
		assert.Equal(t, []string{"ERROR"}, logger.Levels())
	})

	t.Run("clean close", func(t *testing.T) {
		logger := &testutil.MockLogger{}
		var err error

		closeAfterWrite(failingCloser{}, "tasks.txt", logger, &err)

		assert.NoError(t, err)
		assert.Empty(t, logger.Entries)
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"record", FormatRecord},
		{"TXT", FormatRecord},
		{"toml", FormatTOML},
		{"yml", FormatYAML},
		{"yaml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("a/b.TOML", FormatAuto))
	assert.Equal(t, FormatYAML, FormatForPath("b.yml", FormatAuto))
	assert.Equal(t, FormatRecord, FormatForPath("tasks", FormatAuto))
	assert.Equal(t, FormatYAML, FormatForPath("tasks.toml", FormatYAML))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "tasks.txt"), FormatAuto, nil)
	created, err := store.Initialize()
	require.NoError(t, err)
	require.True(t, created)
	return store
}

func TestStore_Initialize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "tasks.txt")
	logger := &testutil.MockLogger{}
	store := New(path, FormatAuto, logger)

	created, err := store.Initialize()
	require.NoError(t, err)
	assert.True(t, created)

	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Contains(t, logger.Levels(), "INFO")

	created, err = store.Initialize()
	require.NoError(t, err)
	assert.False(t, created)
}

func TestStore_LoadMissing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tasks.txt"), FormatAuto, nil)

	got, err := store.Load()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(sampleTasks()))

	got, err := store.Load()
	require.NoError(t, err)
	assertSameTasks(t, sampleTasks(), got)
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(c *domain.TaskCollection) error {
		c.Add(domain.NewTask("first", 1, time.Time{}, false, 0))
		c.Add(domain.NewTask("second", 2, time.Time{}, false, 0))
		return nil
	})
	require.NoError(t, err)

	err = store.Update(func(c *domain.TaskCollection) error {
		return c.Remove(0)
	})
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	task, _ := got.Get(0)
	assert.Equal(t, "second", task.Description)
}

func TestStore_UpdateErrorDoesNotSave(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleTasks()))

	err := store.Update(func(c *domain.TaskCollection) error {
		c.Add(domain.NewTask("ghost", 0, time.Time{}, false, 0))
		return c.Remove(99)
	})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
}

func TestStore_LoadFileSaveFile(t *testing.T) {
	store := newTestStore(t)
	exportPath := filepath.Join(t.TempDir(), "export.toml")

	require.NoError(t, store.SaveFile(exportPath, sampleTasks()))

	got, err := store.LoadFile(exportPath)
	require.NoError(t, err)
	assertSameTasks(t, sampleTasks(), got)
	assert.Equal(t, filepath.Base(store.Path()), "tasks.txt")
}
