// Package fsutil holds the file copy used by every component that writes presets.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst, creating directories as needed. The copy is
// written to a temporary file next to dst and renamed into place, so dst is
// never left half-written. Permissions and modification time are preserved.
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("source %s is not a regular file", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := io.Copy(tmp, srcFile); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to copy: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}

	// Preserve permissions and timestamps where the platform allows
	os.Chmod(tmpName, srcInfo.Mode().Perm())
	os.Chtimes(tmpName, srcInfo.ModTime(), srcInfo.ModTime())

	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("failed to move copy into place: %w", err)
	}
	return nil
}

// WriteFile writes data to path through a temporary file and rename
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	os.Chmod(tmpName, perm)

	return os.Rename(tmpName, path)
}
