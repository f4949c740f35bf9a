package cmd

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ezerfernandes/mdhook/internal/mdfmt"
	"github.com/spf13/cobra"
)

//go:embed help/hook.md
var hookHelp string

type hookInput struct {
	ToolInput struct {
		FilePath string `json:"file_path"`
	} `json:"tool_input"`
}

func hookCmd() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:     "hook",
		Aliases: []string{"h"},
		Short:   "Format the markdown file named by a tool event on stdin",
		Long:    hookHelp,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return hookRun(cmd.InOrStdin(), cmd.OutOrStdout())
		},

		DisableAutoGenTag: true,
	}
}

func hookRun(stdin io.Reader, stdout io.Writer) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}

	var input hookInput

	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parsing hook input: %w", err)
	}

	path := input.ToolInput.FilePath
	if !mdfmt.IsMarkdownFile(path) {
		return nil
	}

	changed, err := mdfmt.FormatFile(path)
	if err != nil {
		return err
	}

	if changed {
		fmt.Fprintf(stdout, "fixed markdown formatting in %s\n", path)
	}

	return nil
}
