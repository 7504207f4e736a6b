package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tracedchan/logger"
	"github.com/aalemi-dev/tracedchan/observability"
)

// FXModule provides *Metrics, MetricsCollector, *ChannelObserver and the
// observability.Observer interface, and runs the enabled metrics servers for
// the lifetime of the application.
//
// A metrics.Config and a logger.Logger must be available in the container.
// Together with instrument.FXModule every channel built from the provided
// *instrument.Instrumentation reports to Prometheus:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    instrument.FXModule,
//	    fx.Provide(loadLoggerConfig, loadMetricsConfig),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		NewChannelObserver,
		fx.Annotate(
			func(o *ChannelObserver) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the enabled servers in the background on
// start and shuts them down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log logger.Logger) {
	servers := map[string]*http.Server{
		"system":      m.SystemServer,
		"application": m.ApplicationServer,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for endpoint, srv := range servers {
				if srv == nil {
					continue
				}
				go func() {
					log.Info("Starting metrics server", nil, map[string]interface{}{
						"endpoint": endpoint,
						"address":  srv.Addr,
					})
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("Metrics server failed", err, map[string]interface{}{"endpoint": endpoint})
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			var errs []error
			for endpoint, srv := range servers {
				if srv == nil {
					continue
				}
				log.Info("Shutting down metrics server", nil, map[string]interface{}{"endpoint": endpoint})
				if err := srv.Shutdown(ctx); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	})
}
