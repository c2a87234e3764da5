// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"testing"

	"github.com/jongio/azd-buildenv/platform"
)

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/bin/bash", "bash"},
		{"/usr/local/bin/zsh", "zsh"},
		{`C:\msys64\usr\bin\bash.exe`, "bash"},
		{`C:\Program Files\PowerShell\7\PWSH.EXE`, "pwsh"},
		{"fish", "fish"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultShell(t *testing.T) {
	tests := []struct {
		name   string
		osName string
		env    map[string]string
		want   string
	}{
		{"native windows", "Windows 10", nil, ShellCmd},
		{"windows with unrelated vars", "Windows 11", map[string]string{"PATH": `C:\Windows`}, ShellCmd},
		{"mingw without SHELL", "Windows 10", map[string]string{"MSYSTEM": "MINGW64"}, ShellBash},
		{"cygwin zsh", "Windows 10", map[string]string{"SHELL": "/usr/bin/zsh"}, ShellZsh},
		{"cygwin via TERM", "Windows 10", map[string]string{"TERM": "xterm"}, ShellBash},
		{"linux with SHELL", "Linux", map[string]string{"SHELL": "/bin/dash"}, "dash"},
		{"linux without SHELL", "Linux", nil, ShellBash},
		{"mac with unknown SHELL", "Mac OS X", map[string]string{"SHELL": "/opt/bin/myshell"}, ShellBash},
		{"solaris ksh", "SunOS", map[string]string{"SHELL": "/usr/bin/ksh"}, "ksh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultShell(tt.osName, platform.MapLookup(tt.env))
			if got != tt.want {
				t.Errorf("DefaultShell(%q, %v) = %q, want %q", tt.osName, tt.env, got, tt.want)
			}
		})
	}
}

func TestDefaultShell_NilLookup(t *testing.T) {
	if got := DefaultShell("Windows 10", nil); got != ShellCmd {
		t.Errorf("DefaultShell(windows, nil) = %q, want %q", got, ShellCmd)
	}
	if got := DefaultShell("FreeBSD", nil); got != ShellBash {
		t.Errorf("DefaultShell(freebsd, nil) = %q, want %q", got, ShellBash)
	}
}

func TestScriptShell(t *testing.T) {
	mingw := platform.MapLookup(map[string]string{"MSYSTEM": "MINGW64"})

	tests := []struct {
		name   string
		script string
		osName string
		lookup platform.Lookup
		want   string
	}{
		{"ps1 on windows", "build.ps1", "Windows 10", nil, ShellPowerShell},
		{"ps1 elsewhere", "build.ps1", "Linux", nil, ShellPwsh},
		{"cmd", "build.cmd", "Linux", nil, ShellCmd},
		{"bat uppercase", `scripts\BUILD.BAT`, "Windows 10", nil, ShellCmd},
		{"sh", "mvnw.sh", "Windows 10", nil, ShellBash},
		{"zsh", "setup.zsh", "Mac OS X", nil, ShellZsh},
		{"no extension native windows", "gradlew", "Windows 10", nil, ShellCmd},
		{"no extension mingw", "gradlew", "Windows 10", mingw, ShellBash},
		{"no extension linux", "gradlew", "Linux", nil, ShellBash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScriptShell(tt.script, tt.osName, tt.lookup); got != tt.want {
				t.Errorf("ScriptShell(%q, %q) = %q, want %q", tt.script, tt.osName, got, tt.want)
			}
		})
	}
}

func TestCurrentShell(t *testing.T) {
	want := DefaultShell(platform.CurrentOSName(), platform.OSLookup())
	if got := CurrentShell(); got != want {
		t.Errorf("CurrentShell() = %q, want %q", got, want)
	}
}
