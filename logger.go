package manifold

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with manifold-specific context.
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

// WithBuffer adds a buffer length field to the logger.
func (l *Logger) WithBuffer(length int) *Logger {
	return &Logger{
		Logger: l.Logger.With("buffer_bytes", length),
	}
}

// WithWindows adds a window count field to the logger.
func (l *Logger) WithWindows(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("windows", count),
	}
}

// LogAnalyze logs an analysis pass.
func (l *Logger) LogAnalyze(ctx context.Context, bufLen, windows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "analyze failed",
			"buffer_bytes", bufLen,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "analyze completed",
			"buffer_bytes", bufLen,
			"windows", windows,
		)
	}
}

// LogExport logs a document export.
func (l *Logger) LogExport(ctx context.Context, codecName string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"codec", codecName,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "export completed",
			"codec", codecName,
			"bytes", size,
		)
	}
}

// LogBatch logs a batch analysis pass.
func (l *Logger) LogBatch(ctx context.Context, total, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch analyze completed with failures",
			"total", total,
			"failed", failed,
			"success", total-failed,
		)
	} else {
		l.InfoContext(ctx, "batch analyze completed",
			"count", total,
		)
	}
}
