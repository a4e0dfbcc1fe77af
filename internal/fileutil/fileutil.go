// Package fileutil provides small filesystem helpers shared across the
// tool, chiefly atomic file replacement for report output.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic builds the file contents in a temporary sibling and
// renames it over path on success, so a failed build never leaves a partial
// file at the destination. Any existing file at path is replaced.
func WriteFileAtomic(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
