// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil wraps log/slog with a process-wide logger for azd-buildenv.
//
// # Basic Usage
//
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("classified OS", "name", name, "family", family)
//	logutil.Warn("classpath entry missing", "path", entry)
//
// Packages that log repeatedly create a component logger:
//
//	log := logutil.NewLogger("platform").WithOperation("resolve-os-name")
//	log.Debug("detected host OS", "name", name)
//
// # Debug Mode
//
// Debug logging is enabled by SetupLogger(true, ...) or by AZD_DEBUG=true.
//
// # Structured Logging
//
// With structured=true logs are JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"joined classpath","entries":3}
//
// Otherwise the slog text format is used.
package logutil
