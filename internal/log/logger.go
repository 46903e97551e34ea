// Package log configures structured logging for the application. All
// packages log through log/slog; this package owns handler setup and the
// component convention.
package log

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Config holds logger configuration.
type Config struct {
	Level   slog.Level
	NoColor bool
}

// Setup installs the default logger: a tint handler writing to stderr.
func Setup(cfg Config) *slog.Logger {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.Level,
		TimeFormat: time.Kitchen,
		NoColor:    cfg.NoColor,
	}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
