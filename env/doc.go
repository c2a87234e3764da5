// Package env converts between the environment representations the CLI
// accepts and the platform.Lookup the classifier consumes.
//
// This package includes:
//   - Parsing repeated KEY=VALUE flags (ParsePairs)
//   - Stable KEY=VALUE rendering (MapToSlice)
//   - Capturing the variables the Windows heuristics read (Snapshot, HeuristicKeys)
//
// # Usage
//
//	vars, err := env.ParsePairs([]string{"MSYSTEM=MINGW64", "TERM"})
//	if err != nil {
//		return err
//	}
//	lookup := platform.MapLookup(vars)
//	seen := env.Snapshot(lookup, env.HeuristicKeys...)
//	// seen: {"MSYSTEM": "MINGW64", "TERM": ""}
package env
