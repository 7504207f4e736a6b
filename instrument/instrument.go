package instrument

import (
	"context"

	"github.com/aalemi-dev/tracedchan/identity"
	"github.com/aalemi-dev/tracedchan/logger"
	"github.com/aalemi-dev/tracedchan/observability"
	"github.com/aalemi-dev/tracedchan/tracer"
)

// Instrumentation bundles the sinks that channel scopes write to. Build it
// with New so that every field is set.
type Instrumentation struct {
	Logger   logger.Logger
	Tracer   tracer.Tracer
	Observer observability.Observer
}

// New returns an Instrumentation. A nil logger discards events. A nil tracer
// falls back to the global OpenTelemetry provider.
func New(log logger.Logger, tr tracer.Tracer, obs observability.Observer) *Instrumentation {
	if log == nil {
		log = logger.NewNop()
	}
	if tr == nil {
		tr = tracer.NewGlobal()
	}
	if obs == nil {
		obs = observability.NewNoOpObserver()
	}
	return &Instrumentation{Logger: log, Tracer: tr, Observer: obs}
}

// Default returns the instrumentation used by channels created without
// options.
func Default() *Instrumentation {
	return New(nil, nil, nil)
}

// Open starts the scope of one channel half. The scope span is a child of
// the span carried by parent, if any.
//
// Parameters:
//   - parent: context whose span becomes the parent of the scope span
//   - component: observability.ComponentMPSC or observability.ComponentOneshot
//   - name: the half, e.g. "mpsc-tx"
//   - id: the channel identity shared by both halves
func (i *Instrumentation) Open(parent context.Context, component, name string, id identity.ID) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	text := id.String()

	ctx, span := i.Tracer.StartSpan(parent, name)
	span.SetAttributes(map[string]interface{}{
		"uuid":      text,
		"component": component,
	})

	return &Scope{
		component: component,
		name:      name,
		id:        id,
		idText:    text,
		ctx:       ctx,
		span:      span,
		log: i.Logger.With(map[string]interface{}{
			"uuid":  text,
			"scope": name,
		}),
		observer: i.Observer,
	}
}
