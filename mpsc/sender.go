package mpsc

import (
	"context"
	"time"

	"github.com/aalemi-dev/tracedchan/identity"
	"github.com/aalemi-dev/tracedchan/instrument"
	"github.com/aalemi-dev/tracedchan/internal/queue"
	"github.com/aalemi-dev/tracedchan/observability"
)

// Sender is a producer handle. It is safe for concurrent use; use Clone to
// give another owner its own handle to release.
type Sender[T any] struct {
	tx    *queue.Sender[T]
	scope *instrument.Scope
}

// Send delivers value, blocking while the buffer is full.
//
// Returns:
//   - nil once value is buffered
//   - *SendError[T] carrying value if the receiver is closed or released
//   - ctx.Err() if ctx ends first; value was not enqueued
func (s *Sender[T]) Send(ctx context.Context, value T) error {
	start := time.Now()
	s.scope.Debug("Sending value")

	err := s.tx.Send(ctx, value)

	s.scope.Observe(observability.OperationSend, start, err, moved(err), nil)
	return err
}

// TrySend delivers value only if it can be buffered without blocking. It
// fails with *FullError[T] or *SendError[T], both carrying value.
func (s *Sender[T]) TrySend(value T) error {
	start := time.Now()
	s.scope.Debug("Sending value")

	err := s.tx.TrySend(value)

	s.scope.Observe(observability.OperationTrySend, start, err, moved(err), nil)
	return err
}

// Clone returns another handle to the same channel. The clone shares the
// channel identity and trace scope and must be released on its own.
func (s *Sender[T]) Clone() *Sender[T] {
	return &Sender[T]{tx: s.tx.Clone(), scope: s.scope}
}

// Release drops this handle. When the last handle is released the receiver
// sees end of stream after draining, and the sender scope ends. Releasing a
// handle twice has no effect.
func (s *Sender[T]) Release() {
	start := time.Now()
	last, ok := s.tx.Release()
	if !ok {
		return
	}
	s.scope.Observe(observability.OperationRelease, start, nil, 0, map[string]interface{}{
		"last_sender": last,
	})
	if last {
		s.scope.End()
	}
}

// IsClosed reports whether the receiver is closed or released, i.e. whether
// every further send will fail.
func (s *Sender[T]) IsClosed() bool {
	return s.tx.IsClosed()
}

// ID returns the channel identity.
func (s *Sender[T]) ID() identity.ID {
	return s.scope.ID()
}

// TraceContext returns a context carrying the sender scope span.
func (s *Sender[T]) TraceContext() context.Context {
	return s.scope.Context()
}

func moved(err error) int64 {
	if err != nil {
		return 0
	}
	return 1
}
