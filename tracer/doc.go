// Package tracer wraps OpenTelemetry for the hierarchical trace context that
// every channel carries.
//
// A channel half opens one span (named "mpsc-tx", "mpsc-rx", "oneshot-tx" or
// "oneshot-rx") as a child of the context it was created with, tags it with
// the channel "uuid" attribute and records one span event per send or
// receive. The span ends when the half is released.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" idiom:
//   - Tracer and Span interfaces define the contract
//   - *TracerClient implements Tracer
//   - NewClient owns an SDK provider, NewGlobal and NewFromProvider borrow one
//   - FXModule provides both *TracerClient and Tracer
//
// # Usage
//
//	tr, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "ingest",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer tr.Shutdown(ctx)
//
//	ctx, span := tr.StartSpan(ctx, "batch")
//	defer span.End()
//	span.AddEvent("flushed", map[string]interface{}{"items": 128})
//
// # Propagation
//
// NewClient installs the W3C trace-context and baggage propagators globally,
// so HTTP or messaging instrumentation elsewhere in the process carries the
// spans of channel scopes across process boundaries.
//
// # Thread Safety
//
// TracerClient and the spans it returns are safe for concurrent use.
package tracer
