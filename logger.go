package chemref

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with chemref-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDataset adds a dataset label field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// LogBuild logs the one-time index build phase.
func (l *Logger) LogBuild(ctx context.Context, elements, constants, aliases int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"elements", elements,
			"constants", constants,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index build completed",
			"elements", elements,
			"constants", constants,
			"aliases", aliases,
		)
	}
}

// LogSnapshotLoad logs loading a dataset snapshot from a source.
func (l *Logger) LogSnapshotLoad(ctx context.Context, source string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"source", source,
			"bytes", size,
		)
	}
}
