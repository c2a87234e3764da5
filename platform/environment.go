// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"os"
	"path"
	"strings"
)

// Environment variable names inspected by the Windows sub-environment checks.
const (
	EnvShell       = "SHELL"
	EnvPath        = "PATH"
	EnvTerm        = "TERM"
	EnvMSystem     = "MSYSTEM"
	EnvMingwPrefix = "MINGW_PREFIX"
	EnvMingwChost  = "MINGW_CHOST"
)

// Lookup reads an environment variable by name. The bool reports whether the
// variable is set, so an empty value is still evidence of presence.
// A nil Lookup behaves as an empty environment.
type Lookup func(key string) (string, bool)

// MapLookup returns a Lookup backed by a literal map.
func MapLookup(env map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// OSLookup returns a Lookup that reads the live process environment on every call.
func OSLookup() Lookup {
	return os.LookupEnv
}

func (l Lookup) get(key string) (string, bool) {
	if l == nil {
		return "", false
	}
	return l(key)
}

// posixShellDirs are directory prefixes a Cygwin or MSYS shell path starts with.
var posixShellDirs = []string{"/bin/", "/usr/bin/", "/usr/local/bin/"}

// posixShells are shell binaries accepted from any absolute POSIX directory.
var posixShells = map[string]bool{
	"sh":   true,
	"bash": true,
	"zsh":  true,
	"dash": true,
	"ksh":  true,
	"fish": true,
	"tcsh": true,
	"csh":  true,
}

// mingwPathMarkers are PATH fragments left by MinGW and MSYS2 installs.
// Separator style is matched exactly.
var mingwPathMarkers = []string{`/mingw64/`, `\mingw64\`, `/msys64/`, `\msys64\`}

// IsCygwinEnv reports whether osName is Windows and lookup shows signs of a
// Cygwin-style POSIX layer: a POSIX SHELL path, a PATH containing /cygdrive/
// or /usr/bin, or any TERM variable.
func IsCygwinEnv(osName string, lookup Lookup) bool {
	if !IsWindowsName(osName) {
		return false
	}

	if shell, ok := lookup.get(EnvShell); ok && isPOSIXShellPath(shell) {
		return true
	}

	if p, ok := lookup.get(EnvPath); ok {
		if strings.Contains(p, "/cygdrive/") || strings.Contains(p, "/usr/bin") {
			return true
		}
	}

	// Any TERM counts, even "dumb". This over-detects plain Windows consoles
	// that export TERM; callers depend on the current behavior.
	if _, ok := lookup.get(EnvTerm); ok {
		return true
	}

	return false
}

// IsMingwEnv reports whether osName is Windows and lookup shows signs of a
// MinGW or MSYS toolchain shell.
//
// MSYSTEM must contain "MINGW" or equal "MSYS" (case-sensitive), so UCRT64
// and CLANG64 do not match. A MinGW/MSYS PATH marker only counts when SHELL
// is also set.
func IsMingwEnv(osName string, lookup Lookup) bool {
	if !IsWindowsName(osName) {
		return false
	}

	if msystem, ok := lookup.get(EnvMSystem); ok {
		if strings.Contains(msystem, "MINGW") || msystem == "MSYS" {
			return true
		}
	}

	if _, ok := lookup.get(EnvMingwPrefix); ok {
		return true
	}
	if _, ok := lookup.get(EnvMingwChost); ok {
		return true
	}

	p, hasPath := lookup.get(EnvPath)
	_, hasShell := lookup.get(EnvShell)
	if hasPath && hasShell && containsAny(p, mingwPathMarkers...) {
		return true
	}

	return false
}

// WindowsEnv holds the Windows sub-environment checks. Both fields may be
// true at once and both are false on other families.
type WindowsEnv struct {
	Cygwin bool `json:"cygwin" yaml:"cygwin"`
	Mingw  bool `json:"mingw" yaml:"mingw"`
}

// DetectWindowsEnv evaluates both sub-environment checks for osName.
func DetectWindowsEnv(osName string, lookup Lookup) WindowsEnv {
	return WindowsEnv{
		Cygwin: IsCygwinEnv(osName, lookup),
		Mingw:  IsMingwEnv(osName, lookup),
	}
}

func isPOSIXShellPath(shell string) bool {
	for _, dir := range posixShellDirs {
		if strings.HasPrefix(shell, dir) {
			return true
		}
	}
	// path, not filepath: the value is a POSIX path even when we run on Windows.
	return path.IsAbs(shell) && posixShells[path.Base(shell)]
}
