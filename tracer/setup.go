package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerClient implements Tracer on top of an OpenTelemetry TracerProvider.
type TracerClient struct {
	tracer oteltrace.Tracer
	sdk    *trace.TracerProvider // nil when the provider is not owned
}

// NewClient builds an SDK tracer provider, installs it as the global provider
// together with the W3C trace-context and baggage propagators, and returns a
// client for it.
//
// Parameters:
//   - cfg: service identity, environment and export switch
//
// Returns:
//   - *TracerClient: owns the provider; call Shutdown to flush it
//   - error: if the OTLP exporter cannot be created
//
// Example:
//
//	tr, err := tracer.NewClient(tracer.Config{ServiceName: "ingest", AppEnv: "dev"})
//	if err != nil {
//	    return err
//	}
//	defer tr.Shutdown(context.Background())
//	tx, rx := mpsc.Channel[Job](64, instrument.WithTracer(tr))
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

func newClientWithContext(ctx context.Context, cfg Config) (*TracerClient, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	client := newClient(tp, cfg.InstrumentationName)
	client.sdk = tp
	return client, nil
}

// NewGlobal returns a client over the global OpenTelemetry provider. Spans
// are no-ops until an SDK provider is installed, e.g. by NewClient. The
// client does not own the provider, so Shutdown does nothing.
func NewGlobal() *TracerClient {
	return newClient(otel.GetTracerProvider(), "")
}

// NewFromProvider returns a client over tp without installing it globally.
// The caller keeps ownership of tp.
func NewFromProvider(tp oteltrace.TracerProvider) *TracerClient {
	return newClient(tp, "")
}

func newClient(tp oteltrace.TracerProvider, name string) *TracerClient {
	if name == "" {
		name = DefaultInstrumentationName
	}
	return &TracerClient{tracer: tp.Tracer(name)}
}

// Shutdown flushes and stops the provider created by NewClient.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.sdk == nil {
		return nil
	}
	return t.sdk.Shutdown(ctx)
}
