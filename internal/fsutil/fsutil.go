// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fsutil wraps the filesystem operations the harvester needs. Every
// failure is wrapped with types.ErrIO, except source read failures that
// already carry types.ErrTransport.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfharvest/pkg/types"
)

// FileExists reports whether a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile returns the contents of path as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", types.ErrIO, path, err)
	}
	return string(data), nil
}

// AppendText appends content to path, creating the file if it is absent.
func AppendText(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", types.ErrIO, path, err)
	}
	_, writeErr := f.WriteString(content)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("%w: writing %s: %w", types.ErrIO, path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: closing %s: %w", types.ErrIO, path, closeErr)
	}
	return nil
}

// DeleteFile removes path. A missing file is an error.
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: deleting %s: %w", types.ErrIO, path, err)
	}
	return nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating directory %s: %w", types.ErrIO, dir, err)
	}
	return nil
}

// WriteFileAtomic copies r into destPath through a temporary file in the
// same directory, renaming it into place only after the copy succeeds. A
// failed write never leaves a partial file at destPath. The file is created
// with mode 0644. Copy failures wrap types.ErrIO unless the reader already
// reported a types.ErrTransport error.
func WriteFileAtomic(destPath string, r io.Reader) (int64, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".pdfharvest-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("%w: creating temp file: %w", types.ErrIO, err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, r)
	if copyErr == nil {
		copyErr = tmpFile.Chmod(0o644)
	}
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		if errors.Is(copyErr, types.ErrTransport) {
			return n, fmt.Errorf("writing %s: %w", destPath, copyErr)
		}
		return n, fmt.Errorf("%w: writing %s: %w", types.ErrIO, destPath, copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return n, fmt.Errorf("%w: closing temp file: %w", types.ErrIO, closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return n, fmt.Errorf("%w: renaming temp file: %w", types.ErrIO, err)
	}
	return n, nil
}

// FindFilesByExtension walks root recursively and returns the absolute paths
// of regular files whose name ends in ext, compared case-insensitively.
// The order of the result is unspecified.
func FindFilesByExtension(root, ext string) ([]string, error) {
	ext = strings.ToLower(ext)
	var matched []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ext) {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		matched = append(matched, abs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %w", types.ErrIO, root, err)
	}
	return matched, nil
}

// DirExists reports whether path is an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
