// Package mpsc provides a bounded multi-producer/single-consumer channel whose
// every send and receive is traced under a per-channel identity.
//
// Delivery semantics are those of the wrapped queue, unchanged:
//
//   - Send blocks while the buffer is full and fails with *SendError, handing
//     the value back, once the receiver is closed or released.
//   - Recv blocks while the buffer is empty and reports end of stream
//     (ok == false) once every sender is released and the buffer is drained.
//   - Receiver.Close rejects new sends but leaves buffered values drainable.
//   - Values from one sender arrive in the order they were sent; order across
//     clones is unspecified.
//
// In addition, each operation emits a debug event ("Sending value" before a
// send, "Maybe received value" after a receive) through the half's
// instrument.Scope. The sender and receiver scopes, named "mpsc-tx" and
// "mpsc-rx", share the channel identity; clones of a sender share its scope.
//
// # Usage
//
//	tx, rx := mpsc.Channel[string](16, instrument.WithLogger(log))
//
//	go func() {
//	    defer tx.Release()
//	    for _, line := range lines {
//	        if err := tx.Send(ctx, line); err != nil {
//	            return
//	        }
//	    }
//	}()
//
//	for {
//	    line, ok, err := rx.Recv(ctx)
//	    if err != nil || !ok {
//	        break
//	    }
//	    handle(line)
//	}
//
// # Releasing Handles
//
// Go has no destructors, so dropping a handle is explicit: call Release on
// every Sender (including clones) and on the Receiver when done with it. A
// receiver waits for values until the last sender is released.
//
// # Cancellation
//
// Send and Recv take a context. When it ends first they return ctx.Err(); a
// cancelled Send enqueued nothing and a cancelled Recv dequeued nothing.
package mpsc
