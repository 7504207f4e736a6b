package instrument

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/tracedchan/logger"
	"github.com/aalemi-dev/tracedchan/observability"
	"github.com/aalemi-dev/tracedchan/tracer"
)

// Params lists the optional dependencies FXModule consumes.
type Params struct {
	fx.In

	Logger   logger.Logger          `optional:"true"`
	Tracer   tracer.Tracer          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewFromParams builds an Instrumentation from the fx container.
func NewFromParams(p Params) *Instrumentation {
	return New(p.Logger, p.Tracer, p.Observer)
}

// FXModule provides *Instrumentation. Combine it with logger.FXModule,
// tracer.FXModule and metrics.FXModule to wire every sink:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    metrics.FXModule,
//	    instrument.FXModule,
//	    fx.Provide(loadLoggerConfig, loadTracerConfig, loadMetricsConfig),
//	    fx.Invoke(func(inst *instrument.Instrumentation) {
//	        tx, rx := mpsc.Channel[Job](64, instrument.WithInstrumentation(inst))
//	        go produce(tx)
//	        go consume(rx)
//	    }),
//	)
var FXModule = fx.Module("instrument",
	fx.Provide(NewFromParams),
)
