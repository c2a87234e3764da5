// Package testutil provides common testing utilities.
//
// This package includes helpers for:
//   - Capturing cliout output in a chosen format (CaptureOutput)
//   - Creating fixture files under a temporary directory (WriteFile)
//   - Building platform lookups from key/value pairs (Env)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestDetect(t *testing.T) {
//	    buf := testutil.CaptureOutput(t, "json")
//	    lookup := testutil.Env(t, "MSYSTEM", "MINGW64")
//	    _ = cliout.Print(platform.Describe("Windows 10", lookup), nil)
//	    // buf holds the JSON report
//	}
package testutil
