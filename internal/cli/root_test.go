package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/testutil"
)

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchTUIFunc should NOT be called when --help is provided")
	assert.Contains(t, buf.String(), "Task Management:")
	assert.Contains(t, buf.String(), "File Commands:")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	container := newTestContainer(sampleTasks())
	container.Config.Warnings = []string{"unknown key in [store]: colour"}

	root := NewRootCommand(container, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"list"})

	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), "Warning: unknown key in [store]: colour")
	assert.Contains(t, out.String(), "write report")
}

func TestNewRootCommand_FileFlagKeepsInjectedStore(t *testing.T) {
	store := testutil.NewMockTaskStore()
	container := newTestContainer(store)

	root := NewRootCommand(container, "test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--file", "other.txt", "add", "hello"})

	require.NoError(t, root.Execute())
	assert.Equal(t, 1, store.Tasks.Len())
}

func TestLaunchTUI_NilContainer(t *testing.T) {
	err := launchTUI(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no task store")
}
