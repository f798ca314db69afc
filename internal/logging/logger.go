// Package logging defines the structured-logging interface used across the
// passport packages, with slog and zap backends.
package logging

import (
	"context"
	"io"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "record saved", "key", key, "bytes", n)
type Logger interface {
	// Debug logs diagnostic details.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but recovered conditions, e.g. an unreadable share token.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// New builds a Logger for the named backend ("slog" or "zap"). Unknown
// backends fall back to slog.
func New(w io.Writer, backend, level string) Logger {
	if backend == "zap" {
		return NewConsoleZapLogger(w, level)
	}
	return NewTextLogger(w, level)
}
