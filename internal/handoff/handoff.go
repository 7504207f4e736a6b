package handoff

import (
	"context"
	"sync"
	"sync/atomic"
)

type phase int

const (
	empty phase = iota
	full
	senderGone
	taken
)

type slot[T any] struct {
	mu       sync.Mutex
	value    T
	phase    phase
	rxClosed bool
	done     chan struct{} // closed on empty -> full or empty -> senderGone
}

// disconnect resolves an empty slot to senderGone. s.mu must be held.
func (s *slot[T]) disconnect() {
	if s.phase != empty {
		return
	}
	s.phase = senderGone
	close(s.done)
}

// New creates a slot and its two handles.
func New[T any]() (*Sender[T], *Receiver[T]) {
	s := &slot[T]{done: make(chan struct{})}
	return &Sender[T]{s: s}, &Receiver[T]{s: s}
}

// Sender is the producing handle. Only the first of Send and Release has an
// effect.
type Sender[T any] struct {
	s    *slot[T]
	used atomic.Bool
}

// Send stores v for the receiver. It fails with *SendError[T] carrying v if
// the receiver is closed or released, or if this sender was already used.
func (tx *Sender[T]) Send(v T) error {
	if tx.used.Swap(true) {
		return &SendError[T]{Value: v}
	}
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rxClosed {
		s.disconnect()
		return &SendError[T]{Value: v}
	}
	s.value = v
	s.phase = full
	close(s.done)
	return nil
}

// Release drops the sender without sending. A pending receiver resolves to
// ErrDisconnected. It reports false if the sender was already used.
func (tx *Sender[T]) Release() bool {
	if tx.used.Swap(true) {
		return false
	}
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnect()
	return true
}

// Used reports whether Send or Release was already called.
func (tx *Sender[T]) Used() bool {
	return tx.used.Load()
}

// IsClosed reports whether the receiver is closed or released.
func (tx *Sender[T]) IsClosed() bool {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()
	return tx.s.rxClosed
}

// Receiver is the consuming handle.
type Receiver[T any] struct {
	s        *slot[T]
	released atomic.Bool
}

// Done returns a channel closed once Recv would not block.
func (rx *Receiver[T]) Done() <-chan struct{} {
	return rx.s.done
}

// Recv waits for the outcome and takes the value.
//
// Returns:
//   - (v, nil) the first time after a successful Send
//   - (zero, ErrDisconnected) if the sender was released without sending,
//     the receiver was closed before a send, or the value was already taken
//   - (zero, ctx.Err()) if ctx ends before an outcome; nothing is taken
func (rx *Receiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-rx.s.done:
	default:
		select {
		case <-rx.s.done:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	s := rx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != full {
		return zero, ErrDisconnected
	}
	v := s.value
	s.value = zero
	s.phase = taken
	return v, nil
}

// Close makes any later Send fail. A value sent before Close stays
// receivable; otherwise the slot resolves to ErrDisconnected at once.
func (rx *Receiver[T]) Close() {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()
	rx.s.rxClosed = true
	rx.s.disconnect()
}

// Release drops the receiver and any value it did not take. It reports false
// if the receiver was already released.
func (rx *Receiver[T]) Release() bool {
	if rx.released.Swap(true) {
		return false
	}
	s := rx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rxClosed = true
	if s.phase == full {
		var zero T
		s.value = zero
		s.phase = taken
	}
	s.disconnect()
	return true
}
