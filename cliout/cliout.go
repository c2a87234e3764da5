// Package cliout provides structured output formatting for CLI commands.
// It supports human-readable text, JSON and YAML, with ANSI colors and
// Unicode symbols when the terminal can show them.
package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jongio/azd-buildenv/platform"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIDot     = "*"
)

// EnvNoColor disables color output when set to any value.
const EnvNoColor = "NO_COLOR"

var (
	mu           sync.RWMutex
	globalFormat           = FormatDefault
	out          io.Writer = os.Stdout
	noColor                = !isTerminal(os.Stdout)
)

// supportsUnicode is resolved on first use so importing cliout stays cheap.
var supportsUnicode = sync.OnceValue(func() bool {
	return detectUnicodeSupport(platform.CurrentOSName(), platform.OSLookup())
})

func isTerminal(w io.Writer) bool {
	if _, set := os.LookupEnv(EnvNoColor); set {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// detectUnicodeSupport checks if the terminal can display Unicode properly.
// Only legacy Windows consoles fall back to ASCII. A nil lookup is an empty
// environment.
func detectUnicodeSupport(osName string, lookup platform.Lookup) bool {
	if !platform.IsWindowsName(osName) {
		return true
	}
	if lookup == nil {
		return false
	}

	// MinGW and Cygwin terminals (mintty) render Unicode.
	if platform.IsMingwEnv(osName, lookup) || platform.IsCygwinEnv(osName, lookup) {
		return true
	}

	// Windows Terminal, VS Code, ConEmu and PowerShell hosts.
	for _, key := range []string{"WT_SESSION", "ConEmuPID", "PSModulePath", "POWERSHELL_DISTRIBUTION_CHANNEL"} {
		if v, ok := lookup(key); ok && v != "" {
			return true
		}
	}
	if v, _ := lookup("TERM_PROGRAM"); v == "vscode" {
		return true
	}

	return false
}

// SetWriter redirects all output. Color is kept only if w is a terminal.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	noColor = !isTerminal(w)
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

func writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// paint wraps s in color unless color is disabled.
func paint(color, s string) string {
	mu.RLock()
	disabled := noColor
	mu.RUnlock()
	if disabled || color == "" {
		return s
	}
	return color + s + Reset
}

func icon(unicode, ascii string) string {
	if supportsUnicode() {
		return unicode
	}
	return ascii
}

// ParseFormat validates a format name. The empty string means FormatDefault.
func ParseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case "", FormatDefault:
		return FormatDefault, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return FormatDefault, fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsStructured returns true if the output format is JSON or YAML.
func IsStructured() bool {
	f := GetFormat()
	return f == FormatJSON || f == FormatYAML
}

// PrintJSON prints data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(writer())
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// Print outputs data in the configured format.
// For the default format it calls formatter instead of encoding data.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		formatter()
		return nil
	}
}

// Header prints a bold header with a divider
func Header(text string) {
	w := writer()
	fmt.Fprintf(w, "\n%s\n", paint(Bold, text))
	fmt.Fprintln(w, strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(BrightGreen, icon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(BrightRed, icon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	fmt.Fprintf(writer(), "%s  %s\n", paint(BrightYellow, icon(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...any) {
	fmt.Fprintf(writer(), "  %s %s\n", icon(SymbolDot, ASCIIDot), fmt.Sprintf(format, args...))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...any) {
	fmt.Fprintf(writer(), format+"\n", args...)
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Fprintf(writer(), "   %s %s\n", paint(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// LabelColored prints a label and colored value pair
func LabelColored(label, value, color string) {
	fmt.Fprintf(writer(), "   %s %s\n", paint(Dim, fmt.Sprintf("%-12s", label+":")), paint(color, value))
}

// LabelBool prints a label with a green "yes" or a dimmed "no".
func LabelBool(label string, v bool) {
	if v {
		LabelColored(label, "yes", Green)
		return
	}
	LabelColored(label, "no", Dim)
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int, len(headers))
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	var b strings.Builder
	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(paint(Bold, fmt.Sprintf("%-*s", widths[header], header)))
		b.WriteString("  ")
	}
	b.WriteString("\n   ")
	for _, header := range headers {
		b.WriteString(strings.Repeat("─", widths[header]) + "  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("   ")
		for _, header := range headers {
			fmt.Fprintf(&b, "%-*s  ", widths[header], row[header])
		}
		b.WriteString("\n")
	}

	fmt.Fprint(writer(), b.String())
}
