package env

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jongio/azd-buildenv/platform"
)

// HeuristicKeys are the variables the Windows sub-environment checks read.
var HeuristicKeys = []string{
	platform.EnvShell,
	platform.EnvPath,
	platform.EnvTerm,
	platform.EnvMSystem,
	platform.EnvMingwPrefix,
	platform.EnvMingwChost,
}

// ParsePairs converts KEY=VALUE entries into a map. A bare KEY is present
// with an empty value, and only the first '=' separates key from value.
// Later entries win.
func ParsePairs(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid env entry %q: missing variable name", pair)
		}
		vars[key] = value
	}
	return vars, nil
}

// MapToSlice converts an env map into KEY=VALUE entries sorted by key.
func MapToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(result)
	return result
}

// Snapshot copies the named variables that lookup reports as present.
// A nil lookup yields an empty map.
func Snapshot(lookup platform.Lookup, keys ...string) map[string]string {
	result := make(map[string]string, len(keys))
	if lookup == nil {
		return result
	}
	for _, key := range keys {
		if value, ok := lookup(key); ok {
			result[key] = value
		}
	}
	return result
}
