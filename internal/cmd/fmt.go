package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/ezerfernandes/mdhook/internal/mdfmt"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

func fmtCmd(opts *options) *cobra.Command {
	var check bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "fmt [flags] pattern...",
		Aliases: []string{"f"},
		Short:   "Format markdown files matching glob patterns",
		Long: `Apply the hook's formatting to markdown files directly. Each
argument is a glob pattern (with ** crossing directories) matched against
paths below the current directory; an argument naming an existing file is
taken as-is. Only .md and .mdx files are rewritten.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return fmtRun(opts, args, check)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&check, "check", false, "report files that need formatting without writing")
	quietFlag(cmd, opts)

	return cmd
}

func fmtRun(opts *options, patterns []string, check bool) error {
	paths, err := matchFiles(os.DirFS("."), patterns)
	if err != nil {
		return err
	}

	var stale int

	for _, path := range paths {
		if check {
			needs, err := mdfmt.NeedsFormat(path)
			if err != nil {
				return err
			}

			if needs {
				opts.status("%s needs formatting\n", path)
				stale++
			}

			continue
		}

		changed, err := mdfmt.FormatFile(path)
		if err != nil {
			return err
		}

		if changed {
			opts.status("formatted %s\n", path)
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d file(s) need formatting", stale)
	}

	return nil
}

// matchFiles walks fsys and returns the markdown files matched by any of
// the patterns, sorted. Hidden directories, vendor and node_modules are
// not descended into, but a pattern naming such a file directly still
// matches it.
func matchFiles(fsys fs.FS, patterns []string) ([]string, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	seen := make(map[string]bool)

	var paths []string

	for _, pattern := range patterns {
		if info, err := fs.Stat(fsys, pattern); err == nil && !info.IsDir() {
			if mdfmt.IsMarkdownFile(pattern) && !seen[pattern] {
				seen[pattern] = true
				paths = append(paths, pattern)
			}

			continue
		}

		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	if len(globs) > 0 {
		err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}

			if d.IsDir() {
				if path != "." && skipDir(d.Name()) {
					return fs.SkipDir
				}

				return nil
			}

			if !mdfmt.IsMarkdownFile(path) || seen[path] {
				return nil
			}

			for _, g := range globs {
				if g.Match(path) {
					seen[path] = true
					paths = append(paths, path)

					break
				}
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(paths)

	return paths, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules"
}
