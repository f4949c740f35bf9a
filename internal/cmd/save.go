package cmd

import (
	"fmt"
	"time"

	"github.com/ezerfernandes/mdhook/internal/config"
	"github.com/ezerfernandes/mdhook/internal/session"
	"github.com/spf13/cobra"
)

func saveCmd(opts *options) *cobra.Command {
	var (
		cfgPath string
		target  string
		dir     string
		lines   int
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "save [flags]",
		Aliases: []string{"s"},
		Short:   "Save the current terminal session to a timestamped file",
		Long: `Capture the rendered content of a tmux pane, scrollback
included, and write it to a timestamped file under the save directory
(default ~/Documents/terminal-sessions), creating it if absent. A
post_save command configured in the config file runs afterwards with {}
expanded to the written path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			if cmd.Flag("dir").Changed {
				cfg.SaveDir = dir
			}

			if cmd.Flag("lines").Changed {
				cfg.Lines = lines
			}

			saveDir, err := config.ExpandPath(cfg.SaveDir)
			if err != nil {
				return err
			}

			path, err := session.Save(cmd.Context(), session.NewTmux(), target, saveDir, cfg.Lines, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "session saved to %s\n", path)

			if cfg.PostSave == "" {
				return nil
			}

			exitCode, err := session.RunPostSave(cmd.Context(), cfg.PostSave, path, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if exitCode != 0 {
				opts.status("warning: post-save command exited with %d\n", exitCode)
			}

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/mdhook/config.yaml)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "tmux pane to capture (default: active pane)")
	cmd.Flags().StringVar(&dir, "dir", "", "directory to save into")
	cmd.Flags().IntVar(&lines, "lines", 0, "scrollback lines to capture")
	quietFlag(cmd, opts)

	return cmd
}
