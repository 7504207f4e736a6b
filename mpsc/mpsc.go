package mpsc

import (
	"github.com/aalemi-dev/tracedchan/identity"
	"github.com/aalemi-dev/tracedchan/instrument"
	"github.com/aalemi-dev/tracedchan/internal/queue"
	"github.com/aalemi-dev/tracedchan/observability"
)

const (
	senderScope   = "mpsc-tx"
	receiverScope = "mpsc-rx"
)

// Channel creates a channel buffering up to capacity values and returns its
// two halves. Both halves carry one fresh identity.
//
// Channel panics if capacity is not positive.
//
// Example:
//
//	tx, rx := mpsc.Channel[Job](64,
//	    instrument.WithInstrumentation(inst),
//	    instrument.WithParent(ctx),
//	)
func Channel[T any](capacity int, opts ...instrument.Option) (*Sender[T], *Receiver[T]) {
	tx, rx := queue.New[T](capacity)

	inst, parent := instrument.Resolve(opts...)
	id := identity.New()

	return &Sender[T]{
			tx:    tx,
			scope: inst.Open(parent, observability.ComponentMPSC, senderScope, id),
		}, &Receiver[T]{
			rx:    rx,
			scope: inst.Open(parent, observability.ComponentMPSC, receiverScope, id),
		}
}
