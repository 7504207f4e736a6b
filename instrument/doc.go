// Package instrument connects channel identities to the logging, tracing and
// observer sinks.
//
// Each channel half owns a Scope: an explicit trace context opened when the
// channel is created. A Scope holds
//
//   - the channel identity (shared by both halves),
//   - an OpenTelemetry span named after the half, tagged with the identity
//     in its "uuid" attribute and parented to the context given at creation,
//   - a logger pre-populated with "uuid" and "scope" fields,
//   - an optional observability.Observer.
//
// Operations never rely on an ambient span: they call Scope.Debug and
// Scope.Observe on the scope they hold. Emission is best effort. A panicking
// observer or logger is recovered and never changes the operation's outcome.
//
// # Options
//
// The mpsc and oneshot factories accept Options:
//
//	tx, rx := mpsc.Channel[int](8,
//	    instrument.WithLogger(log),
//	    instrument.WithTracer(tr),
//	    instrument.WithObserver(obs),
//	    instrument.WithParent(ctx),
//	)
//
// Without options a channel logs nothing and uses the global OpenTelemetry
// provider, so spans appear as soon as an SDK provider is installed.
//
// # FX
//
// FXModule provides *Instrumentation built from whatever Logger, Tracer and
// Observer the container holds; pass it on with WithInstrumentation.
package instrument
