package config

import (
	"fmt"
	"os"
	"path/filepath"

	"squill.dev/squill/internal/git"
)

// FindProjectRoot returns the directory that anchors relative repository paths.
//
// It is the nearest ancestor of start containing a configuration file, or
// else the root of the enclosing git worktree, or else start itself.
func FindProjectRoot(start string) (string, error) {
	absStart, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	for dir := absStart; ; {
		if IsInitialized(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if root, err := git.FindWorktreeRoot(absStart); err == nil {
		return root, nil
	}

	return absStart, nil
}

// FindProjectRootFromWorkingDir is FindProjectRoot for the current directory
func FindProjectRootFromWorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return FindProjectRoot(wd)
}
