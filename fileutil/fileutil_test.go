// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestExistsIsFileIsDir(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "a.jar")
	writeFile(t, file, "jar")

	tests := []struct {
		name       string
		path       string
		wantExists bool
		wantFile   bool
		wantDir    bool
	}{
		{"file", file, true, true, false},
		{"directory", tmpDir, true, false, true},
		{"missing", filepath.Join(tmpDir, "missing"), false, false, false},
		{"empty", "", false, false, false},
		{"blank", "   ", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exists(tt.path); got != tt.wantExists {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.wantExists)
			}
			if got := IsFile(tt.path); got != tt.wantFile {
				t.Errorf("IsFile(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
			if got := IsDir(tt.path); got != tt.wantDir {
				t.Errorf("IsDir(%q) = %v, want %v", tt.path, got, tt.wantDir)
			}
		})
	}
}

func TestFileExistsHelpers(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "pom.xml"), "<project/>")
	writeFile(t, filepath.Join(tmpDir, "build.gradle"), "")

	if !FileExists(tmpDir, "pom.xml") {
		t.Error("FileExists(pom.xml) = false, want true")
	}
	if FileExists(tmpDir, "settings.gradle") {
		t.Error("FileExists(settings.gradle) = true, want false")
	}
	if !FileExistsAny(tmpDir, "missing", "build.gradle") {
		t.Error("FileExistsAny should find build.gradle")
	}
	if FileExistsAny(tmpDir, "a", "b") {
		t.Error("FileExistsAny should be false when nothing exists")
	}
	if !FilesExistAll(tmpDir, "pom.xml", "build.gradle") {
		t.Error("FilesExistAll should be true when every file exists")
	}
	if FilesExistAll(tmpDir, "pom.xml", "missing") {
		t.Error("FilesExistAll should be false when one file is missing")
	}
	if !FilesExistAll(tmpDir) {
		t.Error("FilesExistAll with no names should be true")
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target", "classes")

	if err := EnsureDir(target); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if !IsDir(target) {
		t.Fatal("directory was not created")
	}

	// Idempotent
	if err := EnsureDir(target); err != nil {
		t.Fatalf("second EnsureDir failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(target)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm&^DirPermission != 0 {
			t.Errorf("directory permission %o exceeds %o", perm, DirPermission)
		}
	}
}

func TestEnsureDirErrors(t *testing.T) {
	if err := EnsureDir(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("EnsureDir(\"\") = %v, want ErrEmptyPath", err)
	}

	file := filepath.Join(t.TempDir(), "file")
	writeFile(t, file, "x")
	if err := EnsureDir(file); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("EnsureDir(file) = %v, want ErrNotDirectory", err)
	}
}

func TestEnsureFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "nested", "dir", "marker.txt")

	if err := EnsureFile(target); err != nil {
		t.Fatalf("EnsureFile failed: %v", err)
	}
	if !IsFile(target) {
		t.Fatal("file was not created")
	}

	writeFile(t, target, "keep me")
	if err := EnsureFile(target); err != nil {
		t.Fatalf("second EnsureFile failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "keep me" {
		t.Errorf("EnsureFile truncated existing file, content = %q", data)
	}
}

func TestEnsureFileErrors(t *testing.T) {
	if err := EnsureFile(" "); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("EnsureFile(blank) = %v, want ErrEmptyPath", err)
	}

	dir := t.TempDir()
	if err := EnsureFile(dir); !errors.Is(err, ErrIsDirectory) {
		t.Errorf("EnsureFile(dir) = %v, want ErrIsDirectory", err)
	}

	blocker := filepath.Join(dir, "blocker")
	writeFile(t, blocker, "x")
	if err := EnsureFile(filepath.Join(blocker, "child.txt")); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("EnsureFile under a file = %v, want ErrNotDirectory", err)
	}
}
