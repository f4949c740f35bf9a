package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeTmux(output string, err error) (*Tmux, *[][]string) {
	var calls [][]string

	tmux := &Tmux{run: func(_ context.Context, args ...string) (string, error) {
		calls = append(calls, args)

		return output, err
	}}

	return tmux, &calls
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 30, 12, 0, time.UTC)

	assert.Equal(t, "session-20260830-153012.txt", Filename(now))
}

func TestCapturePaneArgs(t *testing.T) {
	tmux, calls := fakeTmux("content", nil)

	_, err := tmux.CapturePane(context.Background(), "", 500)
	require.NoError(t, err)
	assert.Equal(t, []string{"capture-pane", "-p", "-S", "-500"}, (*calls)[0])

	_, err = tmux.CapturePane(context.Background(), "main.1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"capture-pane", "-p", "-S", "-100000", "-t", "main.1"}, (*calls)[1])
}

func TestSave(t *testing.T) {
	tmux, _ := fakeTmux("line one\nline two", nil)
	dir := filepath.Join(t.TempDir(), "sessions", "nested")
	now := time.Date(2026, 8, 30, 9, 0, 1, 0, time.UTC)

	path, err := Save(context.Background(), tmux, "", dir, 100, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "session-20260830-090001.txt"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", string(got))
}

func TestSaveCaptureFailure(t *testing.T) {
	tmux, _ := fakeTmux("", errors.New("no server running"))
	dir := filepath.Join(t.TempDir(), "sessions")

	_, err := Save(context.Background(), tmux, "", dir, 100, time.Now())
	require.Error(t, err)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "no directory should be created when capture fails")
}

func TestRunPostSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	var stdout, stderr bytes.Buffer

	exitCode, err := RunPostSave(context.Background(), "echo saved {}", path, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "saved "+path+"\n", stdout.String())
}

func TestRunPostSaveExitStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	var stdout, stderr bytes.Buffer

	exitCode, err := RunPostSave(context.Background(), "exit 3", path, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 3, exitCode)
}

func TestRunPostSaveBadSyntax(t *testing.T) {
	var stdout, stderr bytes.Buffer

	_, err := RunPostSave(context.Background(), "if then fi (", "/tmp/x", &stdout, &stderr)
	assert.Error(t, err)
}
