// Package session captures terminal session content and writes it to
// timestamped dump files.
package session

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultLines is the scrollback window captured when no budget is given.
const DefaultLines = 100000

// Tmux runs tmux commands against the local server.
type Tmux struct {
	run func(ctx context.Context, args ...string) (string, error)
}

// NewTmux creates a client for the local tmux binary.
func NewTmux() *Tmux {
	return &Tmux{run: runTmux}
}

// CapturePane returns the rendered content of a pane, including up to
// lines of scrollback. An empty target captures the active pane.
func (t *Tmux) CapturePane(ctx context.Context, target string, lines int) (string, error) {
	if lines <= 0 {
		lines = DefaultLines
	}

	args := []string{"capture-pane", "-p", "-S", fmt.Sprintf("-%d", lines)}
	if target != "" {
		args = append(args, "-t", target)
	}

	return t.run(ctx, args...)
}

func runTmux(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "tmux", args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		return "", fmt.Errorf("tmux %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}
