// Package classpath joins and splits classpath strings for the family of the
// target operating system.
package classpath

import (
	"strings"

	"github.com/jongio/azd-buildenv/platform"
	"github.com/jongio/azd-buildenv/textutil"
)

const (
	windowsSeparator = ";"
	posixSeparator   = ":"
)

// Separator returns the path-list separator used by family f.
func Separator(f platform.Family) string {
	if f == platform.FamilyWindows {
		return windowsSeparator
	}
	return posixSeparator
}

// Join joins entries with the separator of the current OS family.
// Blank entries are skipped and the rest are trimmed.
func Join(entries ...string) string {
	return JoinFor(platform.CurrentFamily(), entries...)
}

// JoinFor joins entries with the separator of family f.
func JoinFor(f platform.Family, entries ...string) string {
	return strings.Join(textutil.CompactBlank(entries), Separator(f))
}

// Split splits a classpath built for the current OS family.
func Split(cp string) []string {
	return SplitFor(platform.CurrentFamily(), cp)
}

// SplitFor splits cp on the separator of family f, dropping blank entries.
// A blank cp yields an empty, non-nil slice.
func SplitFor(f platform.Family, cp string) []string {
	if textutil.IsBlank(cp) {
		return []string{}
	}
	return textutil.CompactBlank(strings.Split(cp, Separator(f)))
}

// Append adds entries to the end of cp for the current OS family.
func Append(cp string, entries ...string) string {
	return AppendFor(platform.CurrentFamily(), cp, entries...)
}

// AppendFor adds entries to the end of cp, skipping blanks and entries that
// are already present.
func AppendFor(f platform.Family, cp string, entries ...string) string {
	existing := SplitFor(f, cp)
	seen := make(map[string]bool, len(existing)+len(entries))
	for _, e := range existing {
		seen[e] = true
	}
	for _, e := range textutil.CompactBlank(entries) {
		if seen[e] {
			continue
		}
		seen[e] = true
		existing = append(existing, e)
	}
	return JoinFor(f, existing...)
}
