// Package config loads the optional YAML configuration for the session
// dumper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultLines   = 100000
	defaultSaveDir = "~/Documents/terminal-sessions"
)

// Config controls where and how much session content gets saved.
type Config struct {
	SaveDir  string `yaml:"save_dir"`
	Lines    int    `yaml:"lines"`
	PostSave string `yaml:"post_save"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{SaveDir: defaultSaveDir, Lines: defaultLines}
}

// Load reads the YAML configuration at path. With an empty path the
// default location (~/.config/mdhook/config.yaml) is used and a missing
// file yields the defaults; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}

		path = filepath.Join(home, ".config", "mdhook", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.SaveDir == "" {
		cfg.SaveDir = defaultSaveDir
	}

	if cfg.Lines <= 0 {
		cfg.Lines = defaultLines
	}

	return cfg, nil
}

// ExpandPath resolves a leading "~/" against the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
