package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pavlo-petrychenko/labb/internal/config"
)

// NewLogger builds the process logger on stderr, tags every record with the
// build version and installs it as the slog default.
//
// Format "json" is meant for production; anything else gives text with
// source locations. Level is debug, info, warn or error (case-insensitive)
// and falls back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newLogHandler(os.Stderr, cfg)).With(slog.String("version", Version))
	slog.SetDefault(logger)
	return logger
}

func newLogHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	json := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
