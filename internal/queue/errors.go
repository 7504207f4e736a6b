package queue

import "errors"

var (
	// ErrClosed is matched by SendError: the receiving side is closed or released
	ErrClosed = errors.New("send on closed channel")

	// ErrFull is matched by FullError: the buffer has no free slot
	ErrFull = errors.New("channel buffer is full")
)

// SendError is returned when a value cannot be delivered because the receiving
// side is gone. It hands the undelivered value back to the caller.
type SendError[T any] struct {
	Value T
}

func (e *SendError[T]) Error() string { return ErrClosed.Error() }

func (e *SendError[T]) Unwrap() error { return ErrClosed }

// FullError is returned by TrySend when the buffer is full. It hands the
// undelivered value back to the caller.
type FullError[T any] struct {
	Value T
}

func (e *FullError[T]) Error() string { return ErrFull.Error() }

func (e *FullError[T]) Unwrap() error { return ErrFull }
