package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the system and application registries and the HTTP servers
// that expose them. It implements MetricsCollector on the application
// registry.
type Metrics struct {
	// SystemServer serves SystemRegistry on /metrics. Nil when disabled.
	SystemServer *http.Server

	// ApplicationServer serves ApplicationRegistry on /metrics. Nil when
	// disabled.
	ApplicationServer *http.Server

	// SystemRegistry holds the Go runtime, process and build info
	// collectors.
	SystemRegistry *prometheus.Registry

	// ApplicationRegistry holds channel metrics and every metric created
	// through CreateCounter or CreateHistogram.
	ApplicationRegistry *prometheus.Registry

	application     prometheus.Registerer // ApplicationRegistry with the service label
	durationBuckets []float64
}

// NewMetrics creates both registries and, for each enabled address, an HTTP
// server. Servers are not started; FXModule starts them, or the caller can
// run ListenAndServe itself.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "ingest"})
//	go m.ApplicationServer.ListenAndServe()
//
//	tx, rx := mpsc.Channel[Job](64,
//	    instrument.WithObserver(metrics.NewChannelObserver(m)))
func NewMetrics(cfg Config) *Metrics {
	serviceLabel := prometheus.Labels{"service": cfg.ServiceName}

	m := &Metrics{
		SystemRegistry:      prometheus.NewRegistry(),
		ApplicationRegistry: prometheus.NewRegistry(),
		durationBuckets:     cfg.DurationBuckets,
	}
	if len(m.durationBuckets) == 0 {
		m.durationBuckets = DefaultDurationBuckets
	}

	prometheus.WrapRegistererWith(serviceLabel, m.SystemRegistry).MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m.application = prometheus.WrapRegistererWith(serviceLabel, m.ApplicationRegistry)

	m.SystemServer = newServer(addressOrDefault(cfg.SystemMetricsAddress, DefaultSystemMetricsAddress), m.SystemRegistry)
	m.ApplicationServer = newServer(addressOrDefault(cfg.ApplicationMetricsAddress, DefaultApplicationMetricsAddress), m.ApplicationRegistry)
	return m
}

func newServer(addr string, reg *prometheus.Registry) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{Addr: addr, Handler: mux}
}
