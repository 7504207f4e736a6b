package metrics

// MetricsCollector creates metrics on the application registry without
// exposing Prometheus types. *Metrics implements it; ChannelObserver depends
// only on this interface.
//
// Creating a metric whose name and labels are already registered returns the
// existing one, so several observers can share a collector.
type MetricsCollector interface {
	// CreateCounter returns a counter vector.
	//
	// Example:
	//   ops := m.CreateCounter("jobs_total", "Jobs handled", []string{"outcome"})
	//   ops.WithLabelValues("ok").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram returns a histogram vector with the given buckets.
	//
	// Example:
	//   wait := m.CreateHistogram("job_wait_seconds", "Queue wait", []string{"queue"}, metrics.DefaultDurationBuckets)
	//   wait.WithLabelValues("ingest").Observe(0.02)
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram
}
