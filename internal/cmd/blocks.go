package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ezerfernandes/mdhook/internal/markdown"
	"github.com/ezerfernandes/mdhook/internal/mdfmt"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func blocksCmd() *cobra.Command {
	var detect bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "blocks [flags] filename",
		Aliases: []string{"b"},
		Short:   "List fenced code blocks in a markdown document",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return blocksRun(cmd.OutOrStdout(), args[0], detect)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&detect, "detect", false, "show the detected language for untagged blocks")

	return cmd
}

func blocksRun(w io.Writer, filename string, detect bool) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	blocks, err := markdown.Parse(src)
	if err != nil {
		return err
	}

	tbl := table.New("#", "LANG", "FILE", "LINES").WithWriter(w)

	for i, block := range blocks {
		tbl.AddRow(i, blockLang(block, detect), block.Meta.Get(metaFile),
			fmt.Sprintf("%d-%d", block.StartLine, block.EndLine))
	}

	tbl.Print()

	return nil
}

// blockLang labels untagged blocks "-", or with the language the formatter
// would assign, marked with a trailing "?" because it is a guess.
func blockLang(block *markdown.Block, detect bool) string {
	if block.Lang != "" {
		return block.Lang
	}

	if detect {
		return mdfmt.DetectLanguage(string(block.Code)) + "?"
	}

	return "-"
}
