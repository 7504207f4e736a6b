package observability

import "time"

// Component names reported in OperationContext.Component.
const (
	ComponentMPSC    = "mpsc"
	ComponentOneshot = "oneshot"
)

// Operation names reported in OperationContext.Operation.
const (
	OperationSend    = "send"
	OperationTrySend = "try_send"
	OperationRecv    = "recv"
	OperationAwait   = "await"
	OperationClose   = "close"
	OperationRelease = "release"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_observer.go -package=mocks

// Observer receives one notification per completed channel operation.
//
// Observers are optional: channels work the same without one. They are
// called synchronously on the goroutine that performed the operation, so
// implementations must not block and must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one completed channel operation.
type OperationContext struct {
	// Component is ComponentMPSC or ComponentOneshot.
	Component string

	// Operation is one of the Operation* constants.
	Operation string

	// Resource is the channel identity in its compact text form.
	Resource string

	// SubResource is the scope of the half that performed the operation:
	// "mpsc-tx", "mpsc-rx", "oneshot-tx" or "oneshot-rx".
	SubResource string

	// Duration is the time from the start of the call to its completion,
	// including any time spent blocked.
	Duration time.Duration

	// Error is the error returned to the caller, if any. End of stream on an
	// mpsc receiver is not an error.
	Error error

	// Size is the number of values moved: 1 for a delivered or received
	// value, 0 otherwise.
	Size int64

	// Metadata carries optional extra details, e.g. {"end_of_stream": true}.
	Metadata map[string]interface{}
}
