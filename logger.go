package dbfgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with table-reading context.
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

// WithTable adds a table name field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// WithRow adds a 0-based record number field to the logger.
func (l *Logger) WithRow(row uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("row", row),
	}
}

// LogOpen logs a table open. name may be empty when the source is an
// anonymous io.Reader.
func (l *Logger) LogOpen(name string, records uint32, fields int, err error) {
	if err != nil {
		l.Error("open failed",
			"table", name,
			"error", err,
		)
	} else {
		l.Debug("table opened",
			"table", name,
			"records", records,
			"fields", fields,
		)
	}
}

// LogRead logs a failed record read.
func (l *Logger) LogRead(row uint32, err error) {
	if err != nil {
		l.Error("record read failed",
			"row", row,
			"error", err,
		)
	} else {
		l.Debug("record read",
			"row", row,
		)
	}
}

// LogScan logs an eager drain of the remaining records.
func (l *Logger) LogScan(records int, err error) {
	if err != nil {
		l.Error("scan failed",
			"records", records,
			"error", err,
		)
	} else {
		l.Debug("scan completed",
			"records", records,
		)
	}
}

// LogExport logs a record export.
func (l *Logger) LogExport(records int, codec string, err error) {
	if err != nil {
		l.Error("export failed",
			"records", records,
			"codec", codec,
			"error", err,
		)
	} else {
		l.Info("export completed",
			"records", records,
			"codec", codec,
		)
	}
}
