package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "conch"

// AppDataDir returns the application data directory for config/database.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the TOML config file.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config.toml")
}

// DBPath returns the path to the demo's SQLite database.
func DBPath() string {
	return filepath.Join(AppDataDir(), "conch.db")
}

// HistoryFilePath returns the path to the line editor history file.
func HistoryFilePath() string {
	return filepath.Join(AppDataDir(), "history")
}

// LogFilePath returns the path to the log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "conch.log")
}
