// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jongio/azd-buildenv/textutil"
)

// File permissions
const (
	// DirPermission is the default permission for creating directories (rwxr-x---)
	DirPermission = 0750
	// FilePermission is the default permission for creating files (rw-r--r--)
	FilePermission = 0644
)

var (
	// ErrEmptyPath is returned when a creation wrapper is given a blank path.
	ErrEmptyPath = errors.New("empty path")
	// ErrNotDirectory is returned when a directory is required but a file exists.
	ErrNotDirectory = errors.New("not a directory")
	// ErrIsDirectory is returned when a file is required but a directory exists.
	ErrIsDirectory = errors.New("is a directory")
)

// Exists reports whether anything exists at path.
func Exists(path string) bool {
	if textutil.IsBlank(path) {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is not a directory.
func IsFile(path string) bool {
	if textutil.IsBlank(path) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	if textutil.IsBlank(path) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists checks if a file exists in a directory.
func FileExists(dir string, filename string) bool {
	return Exists(filepath.Join(dir, filename))
}

// FileExistsAny checks if any of the given filenames exist in the directory.
func FileExistsAny(dir string, filenames ...string) bool {
	for _, filename := range filenames {
		if FileExists(dir, filename) {
			return true
		}
	}
	return false
}

// FilesExistAll checks if all of the given filenames exist in the directory.
// It returns true for an empty list.
func FilesExistAll(dir string, filenames ...string) bool {
	for _, filename := range filenames {
		if !FileExists(dir, filename) {
			return false
		}
	}
	return true
}

// EnsureDir creates a directory and its parents if they don't exist.
// It fails with ErrNotDirectory when a non-directory occupies path.
func EnsureDir(path string) error {
	if textutil.IsBlank(path) {
		return ErrEmptyPath
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return fmt.Errorf("failed to create directory %s: %w", path, ErrNotDirectory)
	}
	if err := os.MkdirAll(path, DirPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// EnsureFile creates an empty file at path, including parent directories, if
// nothing exists there yet. Existing files are left untouched.
func EnsureFile(path string) error {
	if textutil.IsBlank(path) {
		return ErrEmptyPath
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("failed to create file %s: %w", path, ErrIsDirectory)
		}
		return nil
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	// O_EXCL keeps a concurrent creator's content intact.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, FilePermission) // #nosec G304 -- path is chosen by the caller
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
