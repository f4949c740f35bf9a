package mdfmt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a file's content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("not valid UTF-8")

// IsMarkdownFile reports whether path names a markdown-family file.
// Only such files are ever read or rewritten.
func IsMarkdownFile(path string) bool {
	return strings.HasSuffix(path, ".md") || strings.HasSuffix(path, ".mdx")
}

// FormatFile formats the file at path in place, preserving its permission
// bits, and reports whether it was rewritten. A nonexistent path is a
// no-op. The file is only written when formatting changed its content.
func FormatFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	src, formatted, err := readFormatted(path)
	if err != nil {
		return false, err
	}

	if formatted == src {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
		return false, err
	}

	return true, nil
}

// NeedsFormat reports whether formatting would change the file at path,
// without writing anything.
func NeedsFormat(path string) (bool, error) {
	src, formatted, err := readFormatted(path)
	if err != nil {
		return false, err
	}

	return formatted != src, nil
}

func readFormatted(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	if !utf8.Valid(data) {
		return "", "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	src := string(data)

	return src, Format(src), nil
}
