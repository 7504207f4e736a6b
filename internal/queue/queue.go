package queue

import (
	"context"
	"sync"
	"sync/atomic"
)

// state is shared by every handle of one queue. All fields are guarded by mu.
type state[T any] struct {
	mu sync.Mutex

	buf   []T // ring buffer, len(buf) is the capacity
	head  int
	count int

	closed  bool // receiver closed or released
	senders int

	// changed is closed and replaced on every state transition so that
	// blocked callers can wait on it together with ctx.Done().
	changed chan struct{}
}

// New creates a queue holding at most capacity unreceived values.
// It panics if capacity is not positive.
func New[T any](capacity int) (*Sender[T], *Receiver[T]) {
	if capacity < 1 {
		panic("queue: capacity must be positive")
	}
	s := &state[T]{
		buf:     make([]T, capacity),
		senders: 1,
		changed: make(chan struct{}),
	}
	return &Sender[T]{s: s}, &Receiver[T]{s: s}
}

func (s *state[T]) notify() {
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *state[T]) push(v T) {
	s.buf[(s.head+s.count)%len(s.buf)] = v
	s.count++
	s.notify()
}

func (s *state[T]) pop() T {
	var zero T
	v := s.buf[s.head]
	s.buf[s.head] = zero
	s.head = (s.head + 1) % len(s.buf)
	s.count--
	s.notify()
	return v
}

// Sender is one producer handle. It is safe for concurrent use; Clone it to
// hand a separately releasable handle to another owner.
type Sender[T any] struct {
	s        *state[T]
	released atomic.Bool
}

// Send enqueues v, blocking while the buffer is full.
//
// Returns:
//   - nil once v is buffered
//   - *SendError[T] carrying v if the receiver is closed or released, or if
//     this handle was already released
//   - ctx.Err() if ctx ends first; v was not enqueued
func (tx *Sender[T]) Send(ctx context.Context, v T) error {
	if tx.released.Load() {
		return &SendError[T]{Value: v}
	}
	s := tx.s
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return &SendError[T]{Value: v}
		}
		if s.count < len(s.buf) {
			s.push(v)
			s.mu.Unlock()
			return nil
		}
		wait := s.changed
		s.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// TrySend enqueues v only if a slot is free right now.
// It returns *FullError[T] or *SendError[T], both carrying v, on failure.
func (tx *Sender[T]) TrySend(v T) error {
	if tx.released.Load() {
		return &SendError[T]{Value: v}
	}
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &SendError[T]{Value: v}
	}
	if s.count == len(s.buf) {
		return &FullError[T]{Value: v}
	}
	s.push(v)
	return nil
}

// Clone returns a new sender handle for the same queue.
// Cloning a released handle returns a handle that is already released.
func (tx *Sender[T]) Clone() *Sender[T] {
	c := &Sender[T]{s: tx.s}
	if tx.released.Load() {
		c.released.Store(true)
		return c
	}
	tx.s.mu.Lock()
	tx.s.senders++
	tx.s.mu.Unlock()
	return c
}

// Release drops this handle. ok is true only for the call that actually
// released it; later and concurrent losing calls get (false, false). last
// reports whether this was the last live sender.
func (tx *Sender[T]) Release() (last, ok bool) {
	if tx.released.Swap(true) {
		return false, false
	}
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.senders--
	s.notify()
	return s.senders == 0, true
}

// IsClosed reports whether the receiving side is closed or released.
func (tx *Sender[T]) IsClosed() bool {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()
	return tx.s.closed
}

// Receiver is the single consumer handle.
type Receiver[T any] struct {
	s        *state[T]
	released atomic.Bool
}

// Recv dequeues the oldest buffered value, blocking while the buffer is empty.
//
// Returns:
//   - (v, true, nil) when a value was dequeued
//   - (zero, false, nil) at end of stream: every sender is released, or the
//     receiver is closed, and the buffer is drained
//   - (zero, false, ctx.Err()) if ctx ends first; nothing was dequeued
func (rx *Receiver[T]) Recv(ctx context.Context) (T, bool, error) {
	var zero T
	if rx.released.Load() {
		return zero, false, nil
	}
	s := rx.s
	for {
		s.mu.Lock()
		if s.count > 0 {
			v := s.pop()
			s.mu.Unlock()
			return v, true, nil
		}
		if s.closed || s.senders == 0 {
			s.mu.Unlock()
			return zero, false, nil
		}
		wait := s.changed
		s.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	}
}

// Close stops the queue from accepting values. Blocked and future sends fail
// with *SendError; values already buffered can still be received.
func (rx *Receiver[T]) Close() {
	s := rx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.notify()
}

// Release drops the receiver: the queue is closed and buffered values are
// discarded. It reports false if the receiver was already released.
func (rx *Receiver[T]) Release() bool {
	if rx.released.Swap(true) {
		return false
	}
	s := rx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	for i := range s.buf {
		s.buf[i] = zero
	}
	s.head, s.count = 0, 0
	s.closed = true
	s.notify()
	return true
}

// Len returns the number of buffered values.
func (rx *Receiver[T]) Len() int {
	rx.s.mu.Lock()
	defer rx.s.mu.Unlock()
	return rx.s.count
}

// Capacity returns the buffer size the queue was created with.
func (rx *Receiver[T]) Capacity() int {
	return len(rx.s.buf)
}
