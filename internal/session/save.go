package session

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const (
	fileMode = 0o644
	dirMode  = 0o755

	timestampFormat = "20060102-150405"
)

// Filename returns the dump filename for the given moment,
// e.g. "session-20260830-153012.txt".
func Filename(now time.Time) string {
	return "session-" + now.Format(timestampFormat) + ".txt"
}

// Save captures a pane's content and writes it to a timestamped file in
// dir, creating the directory if absent. It returns the path written.
func Save(ctx context.Context, tmux *Tmux, target, dir string, lines int, now time.Time) (string, error) {
	content, err := tmux.CapturePane(ctx, target, lines)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(now))

	if err := os.WriteFile(path, []byte(content+"\n"), fileMode); err != nil {
		return "", err
	}

	return path, nil
}

// RunPostSave executes a shell command after a successful save, with "{}"
// expanded to the dump path. It returns the command's exit status; a
// nonzero status is not an error.
func RunPostSave(ctx context.Context, command, path string, stdout, stderr io.Writer) (int, error) {
	expanded := strings.ReplaceAll(command, "{}", path)

	file, err := syntax.NewParser().Parse(strings.NewReader(expanded), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.Dir(filepath.Dir(path)), interp.StdIO(os.Stdin, stdout, stderr))
	if err != nil {
		return -1, err
	}

	err = runner.Run(ctx, file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}
