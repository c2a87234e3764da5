// Package testutil provides common testing utilities for the azd-buildenv
// packages: capturing CLI output, creating fixture files, and building
// environment lookups.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/azd-buildenv/cliout"
	"github.com/jongio/azd-buildenv/platform"
)

// CaptureOutput redirects cliout to a buffer and selects format for the rest
// of the test. The original writer and the default format are restored via
// t.Cleanup.
//
// Example:
//
//	buf := testutil.CaptureOutput(t, "json")
//	cliout.Success("done")
//	if !strings.Contains(buf.String(), "done") {
//	    t.Error("expected output not found")
//	}
func CaptureOutput(t *testing.T, format string) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	cliout.SetWriter(&buf)
	if err := cliout.SetFormat(format); err != nil {
		t.Fatalf("Failed to set output format: %v", err)
	}

	t.Cleanup(func() {
		cliout.SetWriter(os.Stdout)
		_ = cliout.SetFormat("")
	})

	return &buf
}

// WriteFile creates a file under dir with content, creating parent
// directories as needed, and returns its path.
//
// Example:
//
//	pom := testutil.WriteFile(t, t.TempDir(), "pom.xml", "<project/>")
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// Env builds a Lookup from alternating key, value arguments.
//
// Example:
//
//	lookup := testutil.Env(t, "MSYSTEM", "MINGW64", "TERM", "")
func Env(t *testing.T, kv ...string) platform.Lookup {
	t.Helper()

	if len(kv)%2 != 0 {
		t.Fatalf("Env requires key/value pairs, got %d arguments", len(kv))
	}
	vars := make(map[string]string, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		vars[kv[i]] = kv[i+1]
	}
	return platform.MapLookup(vars)
}
