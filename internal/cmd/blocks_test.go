package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blocksDoc = "# Doc\n\n```go file=main.go\npackage main\n```\n\n```\nimport sys\n```\n"

func TestBlocksRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(blocksDoc), 0o644))

	var out bytes.Buffer

	require.NoError(t, blocksRun(&out, path, false))

	got := out.String()
	assert.Contains(t, got, "go")
	assert.Contains(t, got, "main.go")
	assert.Contains(t, got, "-", "untagged block is shown as -")
	assert.NotContains(t, got, "python?")
}

func TestBlocksRunDetect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(blocksDoc), 0o644))

	var out bytes.Buffer

	require.NoError(t, blocksRun(&out, path, true))

	assert.Contains(t, out.String(), "python?")
}

func TestBlocksRunMissingFile(t *testing.T) {
	var out bytes.Buffer

	err := blocksRun(&out, filepath.Join(t.TempDir(), "absent.md"), false)
	assert.Error(t, err)
}
