// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Default on-disk locations, relative to the user's home.
const (
	defaultDatabasePath = "$HOME/.local/share/ledgerlens/ledgerlens.db"
	defaultModelPath    = "$HOME/.local/share/ledgerlens/category_model.gob"
)

// ExpandPath expands ~ and $VAR style environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath resolves the SQLite database location, falling back to the
// default under the user's data directory.
func DatabasePath(configured string) string {
	if configured == "" {
		configured = defaultDatabasePath
	}
	return ExpandPath(configured)
}

// ModelPath resolves the classifier artifact location, falling back to the
// default under the user's data directory.
func ModelPath(configured string) string {
	if configured == "" {
		configured = defaultModelPath
	}
	return ExpandPath(configured)
}
