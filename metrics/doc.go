// Package metrics exposes channel activity to Prometheus.
//
// NewMetrics sets up two registries, each optionally served over HTTP: a
// system registry with the Go runtime, process and build info collectors,
// and an application registry. ChannelObserver implements
// observability.Observer and records every channel operation on the
// application registry, labelled by component (mpsc or oneshot), operation,
// half (the scope name, e.g. mpsc-tx) and outcome.
//
// Outcomes are derived from the returned error: closed for a send to a closed
// or released receiver, full for a rejected TrySend, disconnected for a
// oneshot whose sender went away, cancelled for context errors, and
// end_of_stream for an mpsc Recv that found no more senders.
//
// Basic usage:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "ingest"})
//	obs := metrics.NewChannelObserver(m)
//
//	tx, rx := mpsc.Channel[Event](256, instrument.WithObserver(obs))
//
// With fx, metrics.FXModule provides the observer as observability.Observer
// and instrument.FXModule picks it up.
//
// Example queries:
//
//	# sends failing because the consumer is gone
//	sum by (service) (rate(channel_operations_total{operation="send",outcome="closed"}[5m]))
//
//	# p99 time producers spend blocked on full channels
//	histogram_quantile(0.99, sum by (le) (rate(channel_operation_duration_seconds_bucket{component="mpsc",operation="send"}[5m])))
package metrics
