package handoff

import "errors"

var (
	// ErrClosed is matched by SendError: the receiver is closed or released,
	// or the sender was already used
	ErrClosed = errors.New("send on closed channel")

	// ErrDisconnected is returned by Recv when the sender was released without
	// sending, or the value was already taken
	ErrDisconnected = errors.New("channel closed")
)

// SendError hands an undelivered value back to the caller.
type SendError[T any] struct {
	Value T
}

func (e *SendError[T]) Error() string { return ErrClosed.Error() }

func (e *SendError[T]) Unwrap() error { return ErrClosed }
