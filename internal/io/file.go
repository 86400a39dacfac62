package ioutils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// CoverImageNames are the file names looked up, in order, when searching a
// soundpack root for cover art.
var CoverImageNames = []string{
	"cover.jpg",
	"cover.jpeg",
	"cover.png",
	"preview.jpg",
	"preview.png",
	"icon.png",
}

// FileExists returns true if path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists returns true if path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteTempFile writes data to a new file in dir named prefix + UUID + suffix.
//
// The caller owns the file and is expected to remove it, typically with
// a deferred RemoveQuietly.
//
// Example:
//
//	path, err := WriteTempFile("/out", "concat-", ".txt", filter)
//	// path = "/out/concat-0190c0de-....txt"
func WriteTempFile(dir, prefix, suffix string, data []byte) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	path := filepath.Join(dir, prefix+id.String()+suffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// RemoveQuietly deletes path, ignoring a file that is already gone.
// It returns any other error so callers may log it.
func RemoveQuietly(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FindCoverImage returns the first file in dir matching CoverImageNames.
// Returns an empty string when the directory has no cover art.
func FindCoverImage(dir string) string {
	for _, name := range CoverImageNames {
		path := filepath.Join(dir, name)
		if FileExists(path) {
			return path
		}
	}
	return ""
}
