// Package shellutil names the shell that build scripts run under on a
// classified host.
//
// # Shell Selection
//
// DefaultShell combines the OS family with the Windows sub-environment:
//   - Native Windows console → cmd
//   - Cygwin or MinGW on Windows → the shell named by SHELL, else bash
//   - Every other family → the shell named by SHELL, else bash
//
// ScriptShell maps script extensions first (.ps1, .cmd, .bat, .sh, .zsh)
// and falls back to DefaultShell. It never opens the script.
//
// # Example Usage
//
//	lookup := platform.MapLookup(map[string]string{"MSYSTEM": "MINGW64"})
//	shell := shellutil.DefaultShell("Windows 10", lookup)
//	// Returns: "bash"
//
//	shell = shellutil.ScriptShell("deploy.ps1", "Linux", nil)
//	// Returns: "pwsh"
package shellutil
