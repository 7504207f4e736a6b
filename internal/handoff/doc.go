// Package handoff implements the single-use value slot wrapped by package
// oneshot: exactly one value travels from exactly one sender to exactly one
// receiver.
//
// The receiver observes completion through Done, a channel closed when the
// slot holds a value or the sender was released without sending. Recv then
// takes the value out. The value can be taken once; later calls report
// ErrDisconnected.
package handoff
