package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a monotonically increasing metric.
type Counter interface {
	// WithLabelValues returns the child counter for lvs. Calling it on a
	// child returns the child.
	WithLabelValues(lvs ...string) Counter
	Inc()
	// Add increases the counter by val, which must not be negative.
	Add(val float64)
}

// Histogram records a distribution of observations.
type Histogram interface {
	// WithLabelValues returns the child histogram for lvs.
	WithLabelValues(lvs ...string) Observer
	Observe(val float64)
}

// Observer records single observations.
type Observer interface {
	Observe(val float64)
}

type counterVec struct {
	vec *prometheus.CounterVec
}

func (c *counterVec) WithLabelValues(lvs ...string) Counter {
	return &counter{metric: c.vec.WithLabelValues(lvs...)}
}

func (c *counterVec) Inc() { c.vec.WithLabelValues().Inc() }

func (c *counterVec) Add(val float64) { c.vec.WithLabelValues().Add(val) }

type counter struct {
	metric prometheus.Counter
}

func (c *counter) WithLabelValues(...string) Counter { return c }

func (c *counter) Inc() { c.metric.Inc() }

func (c *counter) Add(val float64) { c.metric.Add(val) }

type histogramVec struct {
	vec *prometheus.HistogramVec
}

func (h *histogramVec) WithLabelValues(lvs ...string) Observer {
	return h.vec.WithLabelValues(lvs...)
}

func (h *histogramVec) Observe(val float64) { h.vec.WithLabelValues().Observe(val) }
