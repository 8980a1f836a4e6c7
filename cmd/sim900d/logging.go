package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the daemon logger. Output always goes to stderr as JSON;
// when cfg.File is set it is also written to a rotated file, released by
// the returned cleanup function.
func newLogger(cfg LogConfig) (*slog.Logger, func() error) {
	var (
		writer  io.Writer = os.Stderr
		cleanup           = func() error { return nil }
	)

	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stderr, rotator)
		cleanup = rotator.Close
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	return slog.New(handler), cleanup
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
