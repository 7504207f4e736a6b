package tracer

// DefaultInstrumentationName names the OpenTelemetry tracer used for channel
// scopes when Config.InstrumentationName is empty.
const DefaultInstrumentationName = "github.com/aalemi-dev/tracedchan"

// Config defines the OpenTelemetry tracer provider setup.
type Config struct {
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as deployment.environment, e.g. "production".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport sends finished spans to an OTLP/HTTP collector configured
	// through the standard OTEL_EXPORTER_OTLP_* environment variables.
	// When false spans are recorded but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// InstrumentationName is the tracer name attached to every span.
	// Defaults to DefaultInstrumentationName.
	InstrumentationName string `yaml:"instrumentation_name" envconfig:"TRACER_INSTRUMENTATION_NAME"`
}
