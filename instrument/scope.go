package instrument

import (
	"context"
	"errors"
	"time"

	"github.com/aalemi-dev/tracedchan/identity"
	"github.com/aalemi-dev/tracedchan/logger"
	"github.com/aalemi-dev/tracedchan/observability"
	"github.com/aalemi-dev/tracedchan/tracer"
)

// Scope is the trace context of one channel half. It is safe for concurrent
// use, so mpsc sender clones share a single scope.
type Scope struct {
	component string
	name      string
	id        identity.ID
	idText    string

	ctx      context.Context // carries span
	span     tracer.Span
	log      logger.Logger
	observer observability.Observer
}

// ID returns the channel identity.
func (s *Scope) ID() identity.ID { return s.id }

// Name returns the scope name, e.g. "oneshot-rx".
func (s *Scope) Name() string { return s.name }

// Context returns a context carrying the scope span. Use it to parent work
// that belongs to this channel half.
func (s *Scope) Context() context.Context { return s.ctx }

// Debug emits one trace event: a debug log entry and a span event, both
// carrying the channel identity.
func (s *Scope) Debug(msg string) {
	defer recoverSink()
	s.log.DebugWithContext(s.ctx, msg, nil)
	s.span.AddEvent(msg, map[string]interface{}{"uuid": s.idText})
}

// Observe reports a completed operation to the observer, if any. A failure
// other than a context error is also recorded on the scope span.
//
// Parameters:
//   - operation: one of the observability.Operation* constants
//   - start: when the call began
//   - err: the error returned to the caller
//   - size: number of values moved
//   - metadata: optional extra details
func (s *Scope) Observe(operation string, start time.Time, err error, size int64, metadata map[string]interface{}) {
	defer recoverSink()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		s.span.RecordError(err)
	}
	if s.observer == nil {
		return
	}
	s.observer.ObserveOperation(observability.OperationContext{
		Component:   s.component,
		Operation:   operation,
		Resource:    s.idText,
		SubResource: s.name,
		Duration:    time.Since(start),
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}

// End finishes the scope span. Calls after the first are ignored by the span.
func (s *Scope) End() {
	defer recoverSink()
	s.span.End()
}

// recoverSink keeps a failing sink from unwinding into channel operations.
func recoverSink() {
	_ = recover()
}
