// Package sandbox confines filesystem writes to a base directory and
// makes them atomic.
package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidatePath checks if targetPath is safely within baseDir.
// It resolves symlinks, normalizes paths, and verifies containment.
// Neither the base directory nor the target need to exist yet.
// Returns the resolved absolute path or an error.
func ValidatePath(baseDir, targetPath string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}
	realBase, err := resolveExistingPath(filepath.Clean(absBase))
	if err != nil {
		return "", fmt.Errorf("resolving base directory symlinks: %w", err)
	}

	candidate := filepath.Clean(filepath.Join(realBase, targetPath))

	// The path may not exist yet, so resolve as much as we can.
	resolved, err := resolveExistingPath(candidate)
	if err != nil {
		return "", fmt.Errorf("resolving target path: %w", err)
	}

	// Add trailing separator to avoid prefix matching "base2" for "base".
	basePrefix := realBase + string(filepath.Separator)
	if resolved != realBase && !strings.HasPrefix(resolved, basePrefix) {
		return "", fmt.Errorf("path '%s' resolves to '%s' which is outside the base directory '%s'", targetPath, resolved, realBase)
	}

	return resolved, nil
}

// resolveExistingPath resolves symlinks for the longest existing prefix of
// the path, then appends the non-existing suffix. This handles paths that
// don't fully exist yet.
func resolveExistingPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	if dir == path {
		// We've reached the root without finding anything.
		return path, nil
	}

	resolvedDir, err := resolveExistingPath(dir)
	if err != nil {
		return "", err
	}

	return filepath.Join(resolvedDir, base), nil
}

// SafeWrite atomically writes content to a path within the base directory.
// Parent directories are created as needed; the final rename guarantees
// no partially written file is ever observable at the target path.
func SafeWrite(baseDir, relPath string, content []byte, perm os.FileMode) error {
	resolved, err := ValidatePath(baseDir, relPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Write to temp file in the same directory (ensures same filesystem for rename).
	tmp, err := os.CreateTemp(dir, ".template-sync-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Clean up temp file on any failure.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, resolved); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", resolved, err)
	}

	success = true
	return nil
}

// SafeMkdirAll creates directories within the base directory. Idempotent
// when the directory already exists; fails when a non-directory entry
// occupies the path.
func SafeMkdirAll(baseDir, relPath string, perm os.FileMode) error {
	resolved, err := ValidatePath(baseDir, relPath)
	if err != nil {
		return err
	}
	if fi, statErr := os.Stat(resolved); statErr == nil && !fi.IsDir() {
		return fmt.Errorf("creating directory %s: a non-directory entry occupies that path", resolved)
	}
	return os.MkdirAll(resolved, perm)
}
