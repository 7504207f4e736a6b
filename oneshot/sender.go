package oneshot

import (
	"context"
	"time"

	"github.com/aalemi-dev/tracedchan/identity"
	"github.com/aalemi-dev/tracedchan/instrument"
	"github.com/aalemi-dev/tracedchan/internal/handoff"
	"github.com/aalemi-dev/tracedchan/observability"
)

// Sender delivers at most one value. Send and Release each consume it; only
// the first call takes effect.
type Sender[T any] struct {
	tx    *handoff.Sender[T]
	scope *instrument.Scope
}

// Send delivers value and consumes the sender. It never blocks.
//
// Returns:
//   - nil if value is now held for the receiver
//   - *SendError[T] carrying value if the receiver is closed or released, or
//     if the sender was already used
func (s *Sender[T]) Send(value T) error {
	start := time.Now()
	s.scope.Debug("Sending value")

	first := !s.tx.Used()
	err := s.tx.Send(value)

	var size int64
	if err == nil {
		size = 1
	}
	s.scope.Observe(observability.OperationSend, start, err, size, nil)
	if first {
		s.scope.End()
	}
	return err
}

// Release drops the sender without sending; a waiting receiver resolves to
// ErrDisconnected. It has no effect after Send or a previous Release.
func (s *Sender[T]) Release() {
	start := time.Now()
	if !s.tx.Release() {
		return
	}
	s.scope.Observe(observability.OperationRelease, start, nil, 0, nil)
	s.scope.End()
}

// IsClosed reports whether the receiver is closed or released.
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
