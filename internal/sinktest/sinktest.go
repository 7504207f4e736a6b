// Package sinktest captures everything a channel emits so tests can assert
// on it: zap entries, finished OpenTelemetry spans and observer calls.
package sinktest

import (
	"context"
	"sync"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/tracedchan/instrument"
	"github.com/aalemi-dev/tracedchan/logger"
	"github.com/aalemi-dev/tracedchan/observability"
	"github.com/aalemi-dev/tracedchan/tracer"
)

// Sinks holds in-memory logging, tracing and observer sinks.
type Sinks struct {
	Logs            *observer.ObservedLogs
	Spans           *tracetest.SpanRecorder
	Ops             *Recorder
	Instrumentation *instrument.Instrumentation
}

// New returns sinks at debug level with tracing fields enabled. The tracer
// provider is shut down when the test ends.
func New(t testing.TB) *Sinks {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ops := &Recorder{}

	return &Sinks{
		Logs:  logs,
		Spans: spans,
		Ops:   ops,
		Instrumentation: instrument.New(
			logger.NewFromZap(zap.New(core), true),
			tracer.NewFromProvider(tp),
			ops,
		),
	}
}

// Option routes a channel's events into the sinks.
func (s *Sinks) Option() instrument.Option {
	return instrument.WithInstrumentation(s.Instrumentation)
}

// Messages returns the log entries with the given message.
func (s *Sinks) Messages(msg string) []observer.LoggedEntry {
	return s.Logs.FilterMessage(msg).All()
}

// EndedSpan returns the first finished span with the given name.
func (s *Sinks) EndedSpan(name string) (sdktrace.ReadOnlySpan, bool) {
	for _, span := range s.Spans.Ended() {
		if span.Name() == name {
			return span, true
		}
	}
	return nil, false
}

// StartedSpan returns the first started span with the given name, whether
// or not it has ended.
func (s *Sinks) StartedSpan(name string) (sdktrace.ReadWriteSpan, bool) {
	for _, span := range s.Spans.Started() {
		if span.Name() == name {
			return span, true
		}
	}
	return nil, false
}

// Recorder is an observability.Observer that keeps every operation.
type Recorder struct {
	mu  sync.Mutex
	ops []observability.OperationContext
}

// ObserveOperation records ctx.
func (r *Recorder) ObserveOperation(ctx observability.OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, ctx)
}

// Operations returns the recorded operations named op, or all of them when
// op is empty.
func (r *Recorder) Operations(op string) []observability.OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []observability.OperationContext
	for _, o := range r.ops {
		if op == "" || o.Operation == op {
			out = append(out, o)
		}
	}
	return out
}
