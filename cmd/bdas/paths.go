// ABOUTME: Path validation and default locations for the history database.
// ABOUTME: Follows the XDG Base Directory layout on Unix and LOCALAPPDATA on Windows.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// validateAndCleanDBPath validates and cleans a database path.
// Handles Unix/Linux, macOS, and Windows paths (including UNC and drive letters).
func validateAndCleanDBPath(path string) (string, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == ":memory:" {
		return cleanPath, nil
	}
	cleanPath = filepath.Clean(cleanPath)

	if cleanPath == "" || cleanPath == "." || cleanPath == "/" {
		return "", fmt.Errorf("database path cannot be empty, '.', or '/'")
	}

	if runtime.GOOS == "windows" && len(cleanPath) == 2 && cleanPath[1] == ':' {
		return "", fmt.Errorf("database path cannot be a bare drive letter")
	}

	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("database path cannot contain '..'")
	}

	badPatterns := []string{
		".git",
		".svn",
		"node_modules",
		".env",
		"credentials",
		"secret",
	}
	lowerPath := strings.ToLower(cleanPath)
	for _, pattern := range badPatterns {
		if strings.Contains(lowerPath, pattern) {
			return "", fmt.Errorf("database path cannot contain '%s' directory", pattern)
		}
	}

	return cleanPath, nil
}

// validateOutputDir cleans the output directory. Relative parents are allowed
// here since generated files are meant to land next to other projects.
func validateOutputDir(dir string) (string, error) {
	cleanDir := strings.TrimSpace(dir)
	if cleanDir == "" {
		return "", fmt.Errorf("output directory cannot be empty")
	}
	cleanDir = filepath.Clean(cleanDir)
	if cleanDir == "/" {
		return "", fmt.Errorf("output directory cannot be '/'")
	}
	return cleanDir, nil
}

// getDefaultDBPath returns the history database location.
// Priority: configured path > ./bdas.db > XDG_DATA_HOME/bdas/bdas.db
func getDefaultDBPath(configured string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		configured = filepath.Clean(configured)
		if configured == "." {
			log.Printf("Warning: BDAS_DB_PATH is invalid, using default path")
		} else {
			return configured
		}
	}

	cwdPath := "./bdas.db"
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil || homeDir == "" || homeDir == "/" {
			log.Printf("Warning: Could not determine valid home directory (%q): %v, using ./bdas.db", homeDir, err)
			return cwdPath
		}

		if runtime.GOOS == "windows" {
			dataHome = os.Getenv("LOCALAPPDATA")
			if dataHome == "" {
				dataHome = filepath.Join(homeDir, "AppData", "Local")
			}
		} else {
			dataHome = filepath.Join(homeDir, ".local", "share")
		}
	}

	return filepath.Join(dataHome, "bdas", "bdas.db")
}

// openDBDir creates the parent directory of a history database file.
func openDBDir(dbPath string) error {
	if dbPath == ":memory:" {
		return nil
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}
