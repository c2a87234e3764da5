// Package fileutil provides file and directory existence checks and creation
// wrappers for azd-buildenv.
//
// # Existence Checks
//
//   - Exists, IsFile, IsDir: a single path
//   - FileExists, FileExistsAny, FilesExistAll: names inside a directory
//
// Blank paths never exist.
//
// # Creation
//
// EnsureDir creates a directory tree with DirPermission (0750) and is a no-op
// when the directory already exists. EnsureFile creates an empty file with
// FilePermission (0644) plus any missing parents, and never truncates an
// existing file.
//
// # Errors
//
// Creation wrappers return wrapped errors; callers can test for ErrEmptyPath,
// ErrNotDirectory and ErrIsDirectory with errors.Is.
//
//	if err := fileutil.EnsureDir(outDir); errors.Is(err, fileutil.ErrNotDirectory) {
//	    // a file is in the way
//	}
package fileutil
