package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/app"
)

// tasklist runs the root command against a real container rooted at dir.
func tasklist(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	c, err := app.New(dir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err = root.Execute()
	return stdout.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := tasklist(t, dir, args...)
	require.NoError(t, err, "tasklist %v", args)
	return out
}

func TestIntegration_TaskLifecycle(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out := mustRun(t, dir, "init")
	assert.Contains(t, out, "Created "+filepath.Join(dir, "tasks.txt"))

	mustRun(t, dir, "add", "write report", "-p", "3", "-d", "2026-03-12")
	mustRun(t, dir, "add", "buy\tmilk", "-p", "1", "--done")
	mustRun(t, dir, "add", "call bob", "-p", "2", "-c", "4")

	data, err := os.ReadFile(filepath.Join(dir, "tasks.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "# tasklist v1", lines[0])
	assert.Contains(t, lines[2], `"buy\tmilk"`)

	out = mustRun(t, dir, "list", "--sort", "priority")
	rows := dataLines(out)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", strings.Fields(rows[0])[0])
	assert.Equal(t, "2", strings.Fields(rows[1])[0])
	assert.Equal(t, "0", strings.Fields(rows[2])[0])

	mustRun(t, dir, "done", "0")
	out = mustRun(t, dir, "search", "--completed=true")
	assert.Len(t, dataLines(out), 2)

	mustRun(t, dir, "rm", "1")
	out = mustRun(t, dir, "show", "1")
	assert.Contains(t, out, "call bob")

	_, err = tasklist(t, dir, "show", "2")
	assert.Error(t, err)
}

func TestIntegration_ExportImportFormats(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mustRun(t, dir, "init")
	mustRun(t, dir, "add", "alpha", "-p", "2", "-d", "2026-01-02")
	mustRun(t, dir, "add", "beta", "-c", "5")

	for _, name := range []string{"out.toml", "out.yaml", "out.dat"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			mustRun(t, dir, "export", path)

			other := t.TempDir()
			mustRun(t, other, "init")
			out := mustRun(t, other, "import", path)
			assert.Contains(t, out, "Imported 2 tasks")

			listed := mustRun(t, other, "list")
			assert.Contains(t, listed, "alpha")
			assert.Contains(t, listed, "2026-01-02")
			assert.Contains(t, listed, "beta")
		})
	}
}

func TestIntegration_FileFlagAndLocalConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tasklist.toml"),
		[]byte("[store]\npath = \"todo.yaml\"\n\n[display]\ndate_layout = \"02 Jan 2006\"\n"), 0o644))

	mustRun(t, dir, "init")
	mustRun(t, dir, "add", "configured", "-d", "2026-07-04")
	out := mustRun(t, dir, "list")
	assert.Contains(t, out, "04 Jul 2026")
	assert.FileExists(t, filepath.Join(dir, "todo.yaml"))

	mustRun(t, dir, "--file", "side.txt", "init")
	mustRun(t, dir, "-f", "side.txt", "add", "on the side")
	out = mustRun(t, dir, "-f", "side.txt", "list")
	assert.Contains(t, out, "on the side")
	assert.NotContains(t, out, "configured")
}

func TestIntegration_MissingStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := tasklist(t, dir, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
