package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *TracerClient and the Tracer interface from a
// tracer.Config, and shuts the provider down when the application stops.
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "ingest", AppEnv: "prod", EnableExport: true}
//	    }),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes pending spans on shutdown.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *TracerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil {
				return nil
			}
			return tracer.Shutdown(ctx)
		},
	})
}
