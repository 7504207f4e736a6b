// Package oneshot provides a single-use channel that carries exactly one value
// from a Sender to a Receiver, traced under a per-channel identity.
//
// The Receiver is a small state machine:
//
//	Pending --Send--------> Received(value)
//	Pending --Release-----> Disconnected
//	Pending --Close-------> Disconnected (nothing sent yet)
//
// Await resolves it, except that releasing a pending Receiver resolves it
// directly. A Receiver that already resolved keeps its outcome when released.
// The transition happens once: Await keeps returning the
// same outcome afterwards and the "Received value" event is emitted only on
// the first resolution. A Send is announced by a "Sending value" event.
//
// Both halves carry the same identity; their scopes are named "oneshot-tx"
// and "oneshot-rx".
//
// # Usage
//
//	tx, rx := oneshot.Channel[Result](instrument.WithParent(ctx))
//
//	go func() {
//	    res, err := compute(ctx)
//	    if err != nil {
//	        tx.Release()
//	        return
//	    }
//	    _ = tx.Send(res)
//	}()
//
//	res, err := rx.Await(ctx)
//	if errors.Is(err, oneshot.ErrDisconnected) {
//	    // the producer gave up
//	}
//
// Await only suspends the calling goroutine. Done exposes the resolution as a
// channel for use in select statements.
package oneshot
