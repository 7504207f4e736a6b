package logger

import (
	"context"
)

// Logger is the structured logging contract used across the module.
// It is implemented by *LoggerClient.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs an informational message.
	Info(msg string, err error, fields ...map[string]interface{})

	// Error logs an error.
	Error(msg string, err error, fields ...map[string]interface{})

	// DebugWithContext logs a debug-level message and, when tracing is
	// enabled, the trace and span IDs found in ctx.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// With returns a child logger that adds fields to every entry.
	With(fields map[string]interface{}) Logger
}
