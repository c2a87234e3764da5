// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Output formats: default (human-readable), JSON and YAML
//   - ANSI colors, disabled when stdout is not a terminal or NO_COLOR is set
//   - Unicode symbols with ASCII fallbacks for legacy Windows consoles
//   - Labels, bullets and simple tables
//
// # Basic Usage
//
//	if err := cliout.SetFormat(outputFlag); err != nil {
//	    return err
//	}
//
//	return cliout.Print(report, func() {
//	    cliout.Header("Build Environment")
//	    cliout.Label("OS", report.OSName)
//	    cliout.LabelBool("Cygwin", report.Cygwin)
//	})
//
// # Unicode Detection
//
// Non-Windows terminals are assumed to render Unicode. On Windows, MinGW and
// Cygwin shells, Windows Terminal, VS Code, ConEmu and PowerShell hosts do;
// anything else (classic cmd.exe) gets ASCII symbols.
package cliout
