// =============================================================================
// POS Catalog Sync - Logging
// =============================================================================
//
// This package constructs the zerolog loggers used throughout the sync
// pipeline. Components never log through a global: each one receives a
// zerolog.Logger value, which keeps the reconciliation and mutation logic
// deterministic and unit-testable (tests pass zerolog.Nop()).
//
// OUTPUT FORMAT:
//   - "console": human-readable output for interactive runs
//   - "json":    structured output for scheduled/batch runs
//
// =============================================================================

package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Nop is a logger that discards everything. Useful in tests.
var Nop = zerolog.Nop()

// New creates a logger writing to w at the given level.
//
// level is one of "debug", "info", "warn", "error" (case-insensitive);
// anything else falls back to "info". format is "console" or "json".
func New(w io.Writer, level, format string) zerolog.Logger {
	var out io.Writer = w
	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	}

	return zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a config/flag level string to a zerolog level.
// Unrecognized values default to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
