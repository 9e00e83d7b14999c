// Package logging builds the colored terminal logger used by the teamalloc
// CLI.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: warn)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// EnvLevel names the environment variable read by LevelFromEnv
const EnvLevel = "LOG_LEVEL"

// New returns a tint logger writing to w at level
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}))
}

// LevelFromEnv parses LOG_LEVEL, falling back to fallback when unset or
// unknown
func LevelFromEnv(fallback slog.Level) slog.Level {
	return ParseLevel(os.Getenv(EnvLevel), fallback)
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
