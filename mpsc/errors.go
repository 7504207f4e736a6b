package mpsc

import "github.com/aalemi-dev/tracedchan/internal/queue"

// SendError hands back a value that could not be delivered because the
// receiver is closed or released. errors.Is(err, ErrClosed) holds.
type SendError[T any] = queue.SendError[T]

// FullError hands back a value rejected by TrySend because the buffer was
// full. errors.Is(err, ErrFull) holds.
type FullError[T any] = queue.FullError[T]

var (
	// ErrClosed matches every *SendError
	ErrClosed = queue.ErrClosed

	// ErrFull matches every *FullError
	ErrFull = queue.ErrFull
)
