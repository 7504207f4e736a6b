package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// extractTracingFields returns trace_id and span_id for the recording span in
// ctx, or nil when tracing is disabled or no valid span is present.
func (l *LoggerClient) extractTracingFields(ctx context.Context) []zap.Field {
	if !l.tracingEnabled || ctx == nil {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}

	spanContext := span.SpanContext()
	if !spanContext.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", spanContext.TraceID().String()),
		zap.String("span_id", spanContext.SpanID().String()),
	}
}

// convertToZapFields turns an optional error and field maps into zap fields.
// Duplicate keys across maps are written as repeated fields.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

func (l *LoggerClient) withTrace(ctx context.Context, err error, fields []map[string]interface{}) []zap.Field {
	zapFields := l.convertToZapFields(err, fields...)
	return append(zapFields, l.extractTracingFields(ctx)...)
}

// Debug logs a debug-level message.
//
// Example:
//
//	log.Debug("queue drained", nil, map[string]interface{}{"uuid": id.String()})
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Info logs an informational message.
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error together with err.
//
// Example:
//
//	if err := tx.Send(ctx, job); err != nil {
//	    log.Error("job dropped", err, map[string]interface{}{"job": job.ID})
//	}
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// DebugWithContext logs a debug-level message with trace correlation.
// This is the path every channel event takes.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	if !l.Zap.Core().Enabled(zap.DebugLevel) {
		return
	}
	l.Zap.Debug(msg, l.withTrace(ctx, err, fields)...)
}

// With returns a child logger that writes fields on every entry. The child
// shares the parent's core and tracing setting.
func (l *LoggerClient) With(fields map[string]interface{}) Logger {
	return &LoggerClient{
		Zap:            l.Zap.With(l.convertToZapFields(nil, fields)...),
		tracingEnabled: l.tracingEnabled,
	}
}
