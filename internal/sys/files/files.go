// Package files provides utilities for working with files/directories.
package files

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var ErrFileNotFound = errors.New("file not found")

// Exists checks if a file exists.
func Exists(s string) bool {
	_, err := os.Stat(s)
	return !os.IsNotExist(err)
}

// Copy copies the contents of a source file to a destination file,
// truncating the destination if it already exists.
func Copy(from, to string) error {
	srcFile, err := os.Open(from)
	if err != nil {
		return fmt.Errorf("error opening source file: %w", err)
	}

	defer func() {
		if err := srcFile.Close(); err != nil {
			slog.Error("closing source file", "path", from, "error", err)
		}
	}()

	dstFile, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("error creating destination file: %w", err)
	}

	slog.Debug("copying file", "from", filepath.Base(from), "to", to)

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("error copying file: %w", err)
	}

	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("error closing destination file: %w", err)
	}

	return nil
}

// Remove removes the specified file if it exists.
func Remove(s string) error {
	if !Exists(s) {
		return fmt.Errorf("%w: %q", ErrFileNotFound, s)
	}

	slog.Debug("removing file", "path", s)

	if err := os.Remove(s); err != nil {
		return fmt.Errorf("removing file: %w", err)
	}

	return nil
}

// CleanupTemp removes a temporary file, it is not an error if the file is
// already gone.
func CleanupTemp(s string) {
	if err := os.Remove(s); err != nil && !os.IsNotExist(err) {
		slog.Error("could not cleanup temp file", "path", s, "error", err)
		return
	}

	slog.Debug("temp file removed", "path", s)
}
