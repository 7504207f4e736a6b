package oneshot

import "github.com/aalemi-dev/tracedchan/internal/handoff"

// SendError is returned by Sender.Send when the value could not be delivered.
// Value holds the undelivered value. errors.Is(err, ErrClosed) is true.
type SendError[T any] = handoff.SendError[T]

var (
	// ErrClosed is matched by every SendError
	ErrClosed = handoff.ErrClosed

	// ErrDisconnected is returned by Await when the sender was released
	// without sending
	ErrDisconnected = handoff.ErrDisconnected
)
