package mpsc

import (
	"context"
	"time"

	"github.com/aalemi-dev/tracedchan/identity"
	"github.com/aalemi-dev/tracedchan/instrument"
	"github.com/aalemi-dev/tracedchan/internal/queue"
	"github.com/aalemi-dev/tracedchan/observability"
)

// Receiver is the single consumer handle. It must be used by one goroutine
// at a time.
type Receiver[T any] struct {
	rx    *queue.Receiver[T]
	scope *instrument.Scope
}

// Recv returns the next value, blocking while none is buffered.
//
// Returns:
//   - (value, true, nil) for a received value
//   - (zero, false, nil) at end of stream: all senders released, or the
//     receiver closed, and nothing left buffered
//   - (zero, false, ctx.Err()) if ctx ends first; nothing was consumed
func (r *Receiver[T]) Recv(ctx context.Context) (T, bool, error) {
	start := time.Now()

	value, ok, err := r.rx.Recv(ctx)
	if err == nil {
		r.scope.Debug("Maybe received value")
	}

	var size int64
	if ok {
		size = 1
	}
	r.scope.Observe(observability.OperationRecv, start, err, size, map[string]interface{}{
		"end_of_stream": err == nil && !ok,
	})
	return value, ok, err
}

// Close stops the channel from accepting values. Senders blocked on a full
// buffer fail with *SendError, and so does every later send. Values already
// buffered are still returned by Recv, after which Recv reports end of
// stream.
func (r *Receiver[T]) Close() {
	start := time.Now()
	r.rx.Close()
	r.scope.Observe(observability.OperationClose, start, nil, 0, nil)
}

// Release drops the receiver. The channel is closed, buffered values are
// discarded and the receiver scope ends. Releasing twice has no effect.
func (r *Receiver[T]) Release() {
	start := time.Now()
	if !r.rx.Release() {
		return
	}
	r.scope.Observe(observability.OperationRelease, start, nil, 0, nil)
	r.scope.End()
}

// Len returns the number of buffered values.
func (r *Receiver[T]) Len() int {
	return r.rx.Len()
}

// Capacity returns the buffer size given to Channel.
func (r *Receiver[T]) Capacity() int {
	return r.rx.Capacity()
}

// ID returns the channel identity.
func (r *Receiver[T]) ID() identity.ID {
	return r.scope.ID()
}

// TraceContext returns a context carrying the receiver scope span.
func (r *Receiver[T]) TraceContext() context.Context {
	return r.scope.Context()
}
