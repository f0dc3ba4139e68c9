package tui

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveLogFilePath expands a leading "~/" to the home directory and
// resolves relative paths against baseDir. An empty path stays empty.
func ResolveLogFilePath(path, baseDir string) string {
	if path == "" {
		return ""
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to the base directory if we can't get home dir
			return filepath.Join(baseDir, rest)
		}
		return filepath.Join(homeDir, rest)
	}

	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
