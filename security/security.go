// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security provides path validation that keeps user-supplied names
// inside a chosen base directory.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jongio/azd-buildenv/textutil"
)

var (
	// ErrInvalidPath indicates a path is empty or cannot be resolved.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path leaves its base directory.
	ErrPathTraversal = errors.New("path traversal detected")
)

// ResolveWithin joins name onto base and returns the joined path.
//
// name must be relative and must not climb out of base lexically (no "..",
// no absolute or volume paths). When both base and the joined path already
// exist, symbolic links are resolved and the target must still sit under base.
func ResolveWithin(base, name string) (string, error) {
	if textutil.IsBlank(name) {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %s is not inside %s", ErrPathTraversal, name, base)
	}

	joined := filepath.Join(base, name)

	realBase, err := filepath.EvalSymlinks(base)
	if err != nil {
		if os.IsNotExist(err) {
			return joined, nil
		}
		return "", fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
	}
	realPath, err := filepath.EvalSymlinks(joined)
	if err != nil {
		if os.IsNotExist(err) {
			return joined, nil
		}
		return "", fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
	}

	if !isWithin(realBase, realPath) {
		return "", fmt.Errorf("%w: %s resolves outside %s", ErrPathTraversal, name, base)
	}
	return joined, nil
}

func isWithin(base, path string) bool {
	return path == base || strings.HasPrefix(path, strings.TrimSuffix(base, string(filepath.Separator))+string(filepath.Separator))
}
