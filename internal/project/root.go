package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// findUp walks from startDir toward the filesystem root looking for a
// directory entry with the given name. Returns the directory that
// contains it.
func findUp(startDir, name string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return dir, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindWebRoot locates the nearest ancestor of startDir that contains a
// node_modules directory. The web chain is skipped entirely when no
// such root exists.
func FindWebRoot(startDir string) (string, bool, error) {
	return findUp(startDir, "node_modules")
}

// FindPythonRoot locates the nearest ancestor of startDir that carries
// a pyproject.toml. Falls back to startDir itself so the python chain
// still runs for loose scripts.
func FindPythonRoot(startDir string) (string, error) {
	root, ok, err := findUp(startDir, "pyproject.toml")
	if err != nil {
		return "", err
	}
	if !ok {
		return filepath.Abs(startDir)
	}
	return root, nil
}
