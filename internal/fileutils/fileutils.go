// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"

	"mainstack/revenue/internal/models"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// FirstExisting returns the first path that names an existing file.
func FirstExisting(paths ...string) (string, bool) {
	for _, p := range paths {
		if FileExists(p) {
			return p, true
		}
	}
	return "", false
}

// EnsureDirectoryExists creates a directory and its parents if needed
func EnsureDirectoryExists(dirPath string) error {
	if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// WriteFileAtomic writes data next to filePath and renames it into place, so
// readers never see a partial file. Parent directories are created.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filePath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

// CreateFile creates or truncates a file for writing, creating any parent
// directories.
func CreateFile(filePath string, perm os.FileMode) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) // #nosec G304 -- caller-chosen path
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}
