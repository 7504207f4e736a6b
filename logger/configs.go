package logger

// Log level names accepted by Config.Level.
const (
	// Debug enables every entry, including the per-operation channel events
	// emitted by the mpsc and oneshot packages.
	Debug = "debug"

	// Info hides channel events and keeps lifecycle and informational entries.
	Info = "info"

	// Warning keeps only warnings and errors.
	Warning = "warning"

	// Error keeps only errors.
	Error = "error"
)

// Config defines how the zap logger is built.
type Config struct {
	// Level is the minimum level that will be written: "debug", "info",
	// "warning" or "error". Unknown values fall back to "info".
	//
	// Channel send/receive events are written at debug level, so they only
	// show up when Level is "debug".
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// EnableTracing adds "trace_id" and "span_id" fields to entries written
	// through the *WithContext methods when ctx carries a recording
	// OpenTelemetry span. Channel scopes always log with such a context.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// CallerSkip is the number of stack frames skipped when reporting the
	// caller. Channel events are logged two frames below user code (scope and
	// logger), so set 3 to attribute them to the caller of Send/Recv.
	//
	// If not set or set to 0, defaults to 1.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
