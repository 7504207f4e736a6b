package oneshot

// State is the resolution state of a Receiver.
type State int

const (
	// Pending means no outcome has been observed yet.
	Pending State = iota
	// Received means Await returned the sent value.
	Received
	// Disconnected means the sender went away without a value, or the
	// receiver was released.
	Disconnected
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Received:
		return "received"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
