package tracer

import (
	"context"
)

// Tracer creates spans. It is implemented by *TracerClient.
type Tracer interface {
	// StartSpan starts a span as a child of whatever span ctx carries and
	// returns a context holding the new span.
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span is one node of a trace.
type Span interface {
	// End finishes the span. Calls after the first are ignored.
	End()

	// SetAttributes attaches key/value attributes to the span.
	SetAttributes(attrs map[string]interface{})

	// AddEvent records a timestamped event with optional attributes.
	AddEvent(name string, attrs map[string]interface{})

	// RecordError records err as an exception event and marks the span
	// status as error.
	RecordError(err error)
}
