package metrics

import (
	"context"
	"errors"

	"github.com/aalemi-dev/tracedchan/mpsc"
	"github.com/aalemi-dev/tracedchan/observability"
	"github.com/aalemi-dev/tracedchan/oneshot"
)

// Names of the metrics recorded by ChannelObserver.
const (
	OperationsMetric = "channel_operations_total"
	DurationMetric   = "channel_operation_duration_seconds"
	ValuesMetric     = "channel_values_total"
)

// Outcome label values.
const (
	OutcomeOK           = "ok"
	OutcomeEndOfStream  = "end_of_stream"
	OutcomeClosed       = "closed"
	OutcomeFull         = "full"
	OutcomeDisconnected = "disconnected"
	OutcomeCancelled    = "cancelled"
	OutcomeError        = "error"
)

// ChannelObserver turns channel operations into Prometheus metrics:
//
//	channel_operations_total{component,operation,half,outcome}
//	channel_operation_duration_seconds{component,operation}
//	channel_values_total{component,half}
//
// The channel identity is deliberately not a label; correlate individual
// channels through logs and traces instead.
type ChannelObserver struct {
	operations Counter
	durations  Histogram
	values     Counter
}

// NewChannelObserver registers the channel metrics on collector.
//
// Example:
//
//	obs := metrics.NewChannelObserver(m)
//	tx, rx := oneshot.Channel[Reply](instrument.WithObserver(obs))
func NewChannelObserver(collector MetricsCollector) *ChannelObserver {
	return &ChannelObserver{
		operations: collector.CreateCounter(OperationsMetric,
			"Channel operations by half and outcome.",
			[]string{"component", "operation", "half", "outcome"}),
		durations: collector.CreateHistogram(DurationMetric,
			"Channel operation duration including time spent blocked.",
			[]string{"component", "operation"}, nil),
		values: collector.CreateCounter(ValuesMetric,
			"Values moved through channels.",
			[]string{"component", "half"}),
	}
}

// ObserveOperation implements observability.Observer.
func (o *ChannelObserver) ObserveOperation(ctx observability.OperationContext) {
	o.operations.WithLabelValues(ctx.Component, ctx.Operation, ctx.SubResource, Outcome(ctx)).Inc()
	o.durations.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		o.values.WithLabelValues(ctx.Component, ctx.SubResource).Add(float64(ctx.Size))
	}
}

// Outcome classifies an operation for the outcome label.
func Outcome(ctx observability.OperationContext) string {
	err := ctx.Error
	switch {
	case err == nil:
		if eos, _ := ctx.Metadata["end_of_stream"].(bool); eos {
			return OutcomeEndOfStream
		}
		return OutcomeOK
	case errors.Is(err, mpsc.ErrFull):
		return OutcomeFull
	case errors.Is(err, mpsc.ErrClosed), errors.Is(err, oneshot.ErrClosed):
		return OutcomeClosed
	case errors.Is(err, oneshot.ErrDisconnected):
		return OutcomeDisconnected
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}
