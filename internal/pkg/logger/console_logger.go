package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger logs human-readable text records. It writes to stderr so that
// stdout carries nothing but evaluation results.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a console logger on stderr with the specified log level.
func NewConsoleLogger(level string) Logger {
	return NewConsoleLoggerWithWriter(level, os.Stderr)
}

// NewConsoleLoggerWithWriter creates a console logger that writes text records to w.
func NewConsoleLoggerWithWriter(level string, w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(w, opts)

	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
