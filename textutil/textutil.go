// Package textutil provides null-safe string and collection predicates.
//
// Go strings cannot be nil, so the empty string plays that role here:
// IsEmpty("") is true and IsBlank treats whitespace-only strings as empty.
package textutil

import (
	"strings"
	"unicode"
)

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether s has at least one byte.
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// IsBlank reports whether s is empty or contains only Unicode whitespace.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// IsNotBlank reports whether s contains at least one non-whitespace rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// TrimToEmpty trims surrounding whitespace.
func TrimToEmpty(s string) string {
	return strings.TrimSpace(s)
}

// DefaultIfBlank returns def when s is blank, otherwise s.
func DefaultIfBlank(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}

// FirstNonBlank returns the first value that is not blank, or "" if all are.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// IsEmptySlice reports whether s is nil or has no elements.
func IsEmptySlice[T any](s []T) bool {
	return len(s) == 0
}

// IsNotEmptySlice reports whether s has at least one element.
func IsNotEmptySlice[T any](s []T) bool {
	return len(s) > 0
}

// IsEmptyMap reports whether m is nil or has no entries.
func IsEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// IsNotEmptyMap reports whether m has at least one entry.
func IsNotEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) > 0
}

// CompactBlank returns the trimmed non-blank values of in, preserving order.
// The result is never nil.
func CompactBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if IsNotBlank(v) {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}
