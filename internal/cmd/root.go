// Package cmd wires the mdhook commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const metaFile = "file"

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	status statusFunc
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
}

// Execute runs the root command and exits the process with status 1 on
// any error.
func Execute(args []string, stdout, stderr io.Writer) {
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "mdhook",
		Short: "Markdown formatting hook and terminal session dumper",

		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	cmd.AddCommand(
		hookCmd(),
		fmtCmd(opts),
		blocksCmd(),
		saveCmd(opts),
	)

	return cmd
}
