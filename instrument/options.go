package instrument

import (
	"context"

	"github.com/aalemi-dev/tracedchan/logger"
	"github.com/aalemi-dev/tracedchan/observability"
	"github.com/aalemi-dev/tracedchan/tracer"
)

// Option customizes how a channel is instrumented.
type Option func(*Options)

// Options is the resolved set of channel options.
type Options struct {
	Instrumentation *Instrumentation
	Logger          logger.Logger
	Tracer          tracer.Tracer
	Observers       []observability.Observer
	Parent          context.Context
}

// WithInstrumentation uses inst as the base; other options override its fields.
func WithInstrumentation(inst *Instrumentation) Option {
	return func(o *Options) { o.Instrumentation = inst }
}

// WithLogger sets the sink for debug events.
func WithLogger(l logger.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithTracer sets the tracer that opens scope spans.
func WithTracer(t tracer.Tracer) Option { return func(o *Options) { o.Tracer = t } }

// WithObserver adds an operation observer. It is combined with any observer
// of WithInstrumentation and with earlier WithObserver options.
func WithObserver(obs observability.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}

// WithParent parents the channel's scope spans to the span carried by ctx.
// Only the span is used; cancelling ctx has no effect on the channel.
func WithParent(ctx context.Context) Option { return func(o *Options) { o.Parent = ctx } }

// Resolve applies opts and returns the instrumentation and parent context a
// channel factory should use.
func Resolve(opts ...Option) (*Instrumentation, context.Context) {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	base := o.Instrumentation
	if base == nil {
		base = &Instrumentation{}
	}
	log, tr, obs := base.Logger, base.Tracer, base.Observer
	if o.Logger != nil {
		log = o.Logger
	}
	if o.Tracer != nil {
		tr = o.Tracer
	}
	if len(o.Observers) > 0 {
		obs = combine(obs, o.Observers)
	}

	parent := context.Background()
	if o.Parent != nil {
		parent = context.WithoutCancel(o.Parent)
	}
	return New(log, tr, obs), parent
}

func combine(base observability.Observer, extra []observability.Observer) observability.Observer {
	if _, noop := base.(*observability.NoOpObserver); noop {
		base = nil
	}
	if base == nil && len(extra) == 1 {
		return extra[0]
	}
	all := make(observability.Multi, 0, len(extra)+1)
	if base != nil {
		all = append(all, base)
	}
	return append(all, extra...)
}
