package observability

// NoOpObserver discards every operation.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver returns a NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}

// Multi fans every operation out to each non-nil observer in order.
type Multi []Observer

// ObserveOperation forwards ctx to every observer.
func (m Multi) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		if o != nil {
			o.ObserveOperation(ctx)
		}
	}
}
