package oneshot

import (
	"github.com/aalemi-dev/tracedchan/identity"
	"github.com/aalemi-dev/tracedchan/instrument"
	"github.com/aalemi-dev/tracedchan/internal/handoff"
	"github.com/aalemi-dev/tracedchan/observability"
)

const (
	senderScope   = "oneshot-tx"
	receiverScope = "oneshot-rx"
)

// Channel creates a oneshot channel and returns its two halves. Both share a
// freshly generated identity.
//
// Parameters:
//   - opts: instrumentation options; without any, events go to a no-op
//     logger and the global OpenTelemetry provider
//
// Example:
//
//	tx, rx := oneshot.Channel[int](instrument.WithLogger(log))
//	go func() { _ = tx.Send(42) }()
//	v, err := rx.Await(ctx)
func Channel[T any](opts ...instrument.Option) (*Sender[T], *Receiver[T]) {
	tx, rx := handoff.New[T]()

	inst, parent := instrument.Resolve(opts...)
	id := identity.New()

	return &Sender[T]{
			tx:    tx,
			scope: inst.Open(parent, observability.ComponentOneshot, senderScope, id),
		}, &Receiver[T]{
			rx:    rx,
			scope: inst.Open(parent, observability.ComponentOneshot, receiverScope, id),
		}
}
