// Package config loads the demo shell's TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/conch-tools/conch/internal/paths"
)

// Config holds the user-tunable settings for the conch demo shell.
type Config struct {
	// Prompt is the text shown before each input line.
	Prompt string `toml:"prompt"`

	// Color enables styled output when stdout is a terminal.
	Color bool `toml:"color"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Suggestions enables tab-completion.
	Suggestions bool `toml:"suggestions"`

	// HistoryFile overrides the default line-editor history location.
	// Empty means the default under the app data dir; "none" disables it.
	HistoryFile string `toml:"history_file"`

	// DBPath overrides the default database location.
	DBPath string `toml:"db_path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Prompt:      "conch> ",
		Color:       true,
		LogLevel:    "warn",
		Suggestions: true,
	}
}

// Load reads the config file at path, falling back to defaults for a missing
// file. Unknown keys are rejected so typos surface instead of silently doing
// nothing.
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// LoadDefault reads the config from the standard location.
func LoadDefault() (*Config, error) {
	return Load(paths.ConfigFilePath())
}

// ResolvedHistoryFile returns the history file location, honoring the
// "none" sentinel and the default path.
func (c *Config) ResolvedHistoryFile() string {
	switch c.HistoryFile {
	case "none":
		return ""
	case "":
		return paths.HistoryFilePath()
	default:
		return c.HistoryFile
	}
}

// ResolvedDBPath returns the database location.
func (c *Config) ResolvedDBPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return paths.DBPath()
}
