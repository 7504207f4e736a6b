// Package queue implements the bounded multi-producer/single-consumer queue
// wrapped by package mpsc.
//
// Go channels panic on send-after-close and cannot tell a sender that the
// consumer went away, so this queue tracks both sides explicitly:
//
//   - Senders are reference counted. Clone adds a handle, Release drops one.
//     When the last sender is released a waiting Recv reports end of stream.
//   - Receiver.Close rejects new sends and fails blocked senders while keeping
//     buffered values drainable. Receiver.Release does the same and discards
//     whatever is still buffered.
//   - Blocking operations take a context.Context. A cancelled Send never
//     enqueues its value and a cancelled Recv never dequeues one.
//
// All synchronization for a queue instance lives here; callers add none.
package queue
