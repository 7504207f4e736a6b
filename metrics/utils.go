package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter registers a counter vector on the application registry, or
// returns the one already registered under the same name and labels.
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
	return &counterVec{vec: register(m.application, vec)}
}

// CreateHistogram registers a histogram vector on the application registry,
// or returns the one already registered under the same name and labels. Nil
// buckets select DefaultDurationBuckets, or Config.DurationBuckets if set.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	if buckets == nil {
		buckets = m.durationBuckets
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels)
	return &histogramVec{vec: register(m.application, vec)}
}

// register panics on conflicting descriptors, like MustRegister.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}
