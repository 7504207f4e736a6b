package logger

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedLogger creates a LoggerClient backed by an in-memory observer
// so tests can assert on emitted log entries without writing to stderr.
func newObservedLogger(level zapcore.Level, tracingEnabled bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewFromZap(zap.New(core), tracingEnabled), logs
}

func TestNewLoggerClient_Levels(t *testing.T) {
	t.Parallel()
	cases := []struct {
		level    string
		expected zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warning, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tc.level); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
			l := NewLoggerClient(Config{Level: tc.level, ServiceName: "test"})
			if l == nil || l.Zap == nil {
				t.Fatal("expected non-nil LoggerClient")
			}
			if !l.Zap.Core().Enabled(tc.expected) {
				t.Errorf("expected level %v to be enabled", tc.expected)
			}
		})
	}
}

func TestNewLoggerClient_TracingEnabled(t *testing.T) {
	t.Parallel()
	l := NewLoggerClient(Config{Level: Info, EnableTracing: true})
	if !l.tracingEnabled {
		t.Error("expected tracingEnabled to be true")
	}
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	t.Parallel()
	l := NewNop()
	if l.Zap.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should not enable any level")
	}
	l.DebugWithContext(context.Background(), "ignored", nil)
}

func TestConvertToZapFields(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)

	if got := l.convertToZapFields(nil); len(got) != 0 {
		t.Errorf("expected 0 fields, got %d", len(got))
	}

	got := l.convertToZapFields(errors.New("oops"), map[string]interface{}{"k": "v"}, map[string]interface{}{"n": 1})
	if len(got) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(got))
	}
	if got[0].Key != "error" {
		t.Errorf("expected first key 'error', got %q", got[0].Key)
	}
}

func TestLevels_WriteEntries(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, false)

	l.Debug("d", nil)
	l.Info("i", nil)
	l.Error("e", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.ErrorLevel}
	for i, lvl := range want {
		if entries[i].Level != lvl {
			t.Errorf("entry %d: expected %v, got %v", i, lvl, entries[i].Level)
		}
	}
	if entries[2].ContextMap()["error"] != "boom" {
		t.Errorf("expected error field to be 'boom'")
	}
}

func TestDebugWithContext_SuppressedAtInfo(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, true)
	l.DebugWithContext(context.Background(), "hidden", nil)
	if logs.Len() != 0 {
		t.Errorf("expected no entries, got %d", logs.Len())
	}
}

func TestDebugWithContext_NoSpan(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, true)
	l.DebugWithContext(context.Background(), "ctx debug", nil)
	l.DebugWithContext(context.Background(), "ctx debug failed", errors.New("x"))

	if logs.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", logs.Len())
	}
	for _, e := range logs.All() {
		if _, ok := e.ContextMap()["trace_id"]; ok {
			t.Error("did not expect trace_id without an active span")
		}
	}
}

func TestDebugWithContext_AttachesTraceIDs(t *testing.T) {
	t.Parallel()
	tp := trace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	l, logs := newObservedLogger(zapcore.DebugLevel, true)
	l.DebugWithContext(ctx, "Sending value", nil, map[string]interface{}{"uuid": "abc"})

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["trace_id"] != span.SpanContext().TraceID().String() {
		t.Errorf("unexpected trace_id %v", fields["trace_id"])
	}
	if fields["span_id"] != span.SpanContext().SpanID().String() {
		t.Errorf("unexpected span_id %v", fields["span_id"])
	}
	if fields["uuid"] != "abc" {
		t.Errorf("unexpected uuid %v", fields["uuid"])
	}
}

func TestExtractTracingFields_Disabled(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)
	if fields := l.extractTracingFields(context.Background()); len(fields) != 0 {
		t.Errorf("expected no fields when tracing is disabled, got %d", len(fields))
	}
}

func TestExtractTracingFields_NilContext(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, true)
	//nolint:staticcheck // intentionally passing nil to test guard
	if fields := l.extractTracingFields(nil); len(fields) != 0 {
		t.Errorf("expected no fields for nil context, got %d", len(fields))
	}
}

func TestWith_AddsFields(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, true)

	child := l.With(map[string]interface{}{"scope": "mpsc-tx"})
	child.Debug("hello", nil)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if logs.All()[0].ContextMap()["scope"] != "mpsc-tx" {
		t.Error("expected scope field on child entries")
	}
	if !child.(*LoggerClient).tracingEnabled {
		t.Error("child should inherit tracing setting")
	}
}

func TestLoggerClient_ImplementsLogger(t *testing.T) {
	t.Parallel()
	var _ Logger = NewNop()
}
