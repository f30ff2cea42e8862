// Package storage persists the offline game, finished engine games and
// player statistics in BadgerDB.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
)

const appName = "offline-chess"

// DataDirPath returns the platform-specific data directory for the
// application without creating it.
// - macOS: ~/Library/Application Support/offline-chess/
// - Linux: ~/.local/share/offline-chess/
// - Windows: %APPDATA%/offline-chess/
func DataDirPath() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Check XDG_DATA_HOME first
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(baseDir, appName), nil
}

// GetDataDir returns the data directory, creating it if needed.
func GetDataDir() (string, error) {
	dataDir, err := DataDirPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	log.Debug().Str("dir", dbDir).Msg("database directory")

	return dbDir, nil
}
