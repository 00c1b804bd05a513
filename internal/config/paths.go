package config

import (
	"os"
	"path/filepath"
)

// HomeDir returns the salta home directory ($SALTA_HOME or ~/.salta).
func HomeDir() string {
	if home := os.Getenv("SALTA_HOME"); home != "" {
		return ExpandPath(home)
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".salta"
	}
	return filepath.Join(userHome, ".salta")
}

// SettingsPath returns the path to settings.json.
func SettingsPath() string {
	return filepath.Join(HomeDir(), "settings.json")
}

// DefaultDBPath returns the default SQLite database path.
func DefaultDBPath() string {
	return filepath.Join(HomeDir(), "history.db")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
