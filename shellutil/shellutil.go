// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"path"
	"strings"

	"github.com/jongio/azd-buildenv/platform"
)

// Shell identifiers.
const (
	// ShellBash is the Bourne Again Shell (default on most Unix systems).
	ShellBash = "bash"

	// ShellCmd is the Windows Command Prompt.
	ShellCmd = "cmd"

	// ShellPowerShell is Windows PowerShell (5.1 and earlier).
	ShellPowerShell = "powershell"

	// ShellPwsh is PowerShell Core (6.0+, cross-platform).
	ShellPwsh = "pwsh"

	// ShellSh is the POSIX shell.
	ShellSh = "sh"

	// ShellZsh is the Z Shell.
	ShellZsh = "zsh"
)

// knownShells are the names accepted from a SHELL value.
var knownShells = map[string]bool{
	ShellBash:       true,
	ShellSh:         true,
	ShellZsh:        true,
	"dash":          true,
	"ksh":           true,
	"fish":          true,
	ShellPwsh:       true,
	ShellPowerShell: true,
}

// Name extracts a shell name from a path such as "/usr/bin/bash" or
// `C:\msys64\usr\bin\bash.exe`. It returns "" for blank input.
func Name(shellPath string) string {
	p := strings.TrimSpace(strings.ReplaceAll(shellPath, `\`, "/"))
	if p == "" {
		return ""
	}
	name := strings.ToLower(path.Base(p))
	return strings.TrimSuffix(name, ".exe")
}

// fromEnv returns the shell named by SHELL when it is one we recognize.
func fromEnv(lookup platform.Lookup) string {
	if lookup == nil {
		return ""
	}
	value, ok := lookup(platform.EnvShell)
	if !ok {
		return ""
	}
	if name := Name(value); knownShells[name] {
		return name
	}
	return ""
}

// DefaultShell reports the shell build scripts should run under for the
// given OS name and environment.
//
// Native Windows consoles get cmd. Cygwin and MinGW shells, and every
// non-Windows family, get the shell named by SHELL, falling back to bash.
func DefaultShell(osName string, lookup platform.Lookup) string {
	if platform.IsWindowsName(osName) {
		env := platform.DetectWindowsEnv(osName, lookup)
		if !env.Cygwin && !env.Mingw {
			return ShellCmd
		}
	}
	if shell := fromEnv(lookup); shell != "" {
		return shell
	}
	return ShellBash
}

// ScriptShell picks a shell for scriptName from its extension, and falls back
// to DefaultShell for unrecognized extensions. Script contents are not read.
//
// Extension mapping:
//   - .ps1 → powershell on Windows, pwsh elsewhere
//   - .cmd, .bat → cmd
//   - .sh → bash
//   - .zsh → zsh
func ScriptShell(scriptName, osName string, lookup platform.Lookup) string {
	switch strings.ToLower(path.Ext(strings.ReplaceAll(scriptName, `\`, "/"))) {
	case ".ps1":
		if platform.IsWindowsName(osName) {
			return ShellPowerShell
		}
		return ShellPwsh
	case ".cmd", ".bat":
		return ShellCmd
	case ".sh":
		return ShellBash
	case ".zsh":
		return ShellZsh
	default:
		return DefaultShell(osName, lookup)
	}
}

// CurrentShell is DefaultShell for the running host.
func CurrentShell() string {
	return DefaultShell(platform.CurrentOSName(), platform.OSLookup())
}
