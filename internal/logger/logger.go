// Package logger builds the application's structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/idilsaglam/grocery/internal/config"
)

// ParseLevel maps a configured level name to a slog.Level. Unknown names
// fall back to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New returns a JSON logger writing to w at the configured level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Setup opens cfg.File (appending) or falls back to fallback when no file is
// configured. The returned close func releases the file.
func Setup(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, func() error, error) {
	if cfg.File == "" {
		return New(fallback, cfg.Level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, cfg.Level), f.Close, nil
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
