package oneshot

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/aalemi-dev/tracedchan/identity"
	"github.com/aalemi-dev/tracedchan/instrument"
	"github.com/aalemi-dev/tracedchan/internal/handoff"
	"github.com/aalemi-dev/tracedchan/observability"
)

// Receiver is the awaiting half. Await, Poll and Release must not be called
// concurrently; State, Done and Close may be called from any goroutine.
type Receiver[T any] struct {
	rx    *handoff.Receiver[T]
	scope *instrument.Scope

	state atomic.Int32
	value T
	err   error
}

// Await waits for the outcome.
//
// Returns:
//   - (value, nil) once the sender has sent
//   - (zero, ErrDisconnected) if the sender was released without sending, or
//     the receiver was closed before anything was sent
//   - (zero, ctx.Err()) if ctx ends first; the receiver stays Pending and
//     a later Await can still obtain the value
//
// After resolution every call returns the same outcome immediately. The
// "Received value" event is emitted only for the resolving call.
func (r *Receiver[T]) Await(ctx context.Context) (T, error) {
	if r.State() != Pending {
		return r.value, r.err
	}

	start := time.Now()
	value, err := r.rx.Recv(ctx)
	if err != nil && !errors.Is(err, ErrDisconnected) {
		r.scope.Observe(observability.OperationAwait, start, err, 0, nil)
		var zero T
		return zero, err
	}

	r.resolve(value, err)
	r.scope.Debug("Received value")

	var size int64
	if err == nil {
		size = 1
	}
	r.scope.Observe(observability.OperationAwait, start, err, size, nil)
	r.scope.End()
	return r.value, r.err
}

// Poll returns the outcome if it is available, without blocking. ready is
// false while the sender has neither sent nor been released.
func (r *Receiver[T]) Poll() (value T, ready bool, err error) {
	if r.State() == Pending {
		select {
		case <-r.rx.Done():
		default:
			return value, false, nil
		}
	}
	value, err = r.Await(context.Background())
	return value, true, err
}

func (r *Receiver[T]) resolve(value T, err error) {
	r.value, r.err = value, err
	if err != nil {
		r.state.Store(int32(Disconnected))
		return
	}
	r.state.Store(int32(Received))
}

// Done returns a channel that is closed once Await would not block.
func (r *Receiver[T]) Done() <-chan struct{} {
	return r.rx.Done()
}

// State reports how far the receiver has resolved.
func (r *Receiver[T]) State() State {
	return State(r.state.Load())
}

// Close makes any later Send fail with *SendError. A value sent before Close
// is still returned by Await; without one, Await no longer waits and resolves
// to ErrDisconnected.
func (r *Receiver[T]) Close() {
	start := time.Now()
	r.rx.Close()
	r.scope.Observe(observability.OperationClose, start, nil, 0, nil)
}

// Release drops the receiver together with any value it has not awaited, and
// makes later sends fail. A pending receiver resolves to Disconnected; a
// resolved receiver keeps its outcome. Releasing twice has no effect.
func (r *Receiver[T]) Release() {
	start := time.Now()
	if !r.rx.Release() {
		return
	}
	pending := r.State() == Pending
	if pending {
		var zero T
		r.resolve(zero, ErrDisconnected)
	}
	r.scope.Observe(observability.OperationRelease, start, nil, 0, nil)
	if pending {
		r.scope.End()
	}
}

// ID returns the channel identity.
func (r *Receiver[T]) ID() identity.ID {
	return r.scope.ID()
}

// TraceContext returns a context carrying the receiver scope span.
func (r *Receiver[T]) TraceContext() context.Context {
	return r.scope.Context()
}
