package metrics

// Default listen addresses of the two metrics endpoints.
const (
	DefaultSystemMetricsAddress      = ":9090"
	DefaultApplicationMetricsAddress = ":9091"
)

// DefaultDurationBuckets are the histogram buckets, in seconds, used for
// channel operation durations when Config.DurationBuckets is empty. They span
// uncontended operations (microseconds) up to long waits on an empty or full
// channel.
var DefaultDurationBuckets = []float64{
	.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 30,
}

// Config controls the metrics endpoints and the channel observer.
//
// Two endpoints are served:
//   - system (default :9090): Go runtime, process and build info collectors
//   - application (default :9091): channel operation metrics and anything
//     created through MetricsCollector
//
// A nil address selects the default, an empty one disables the server. The
// registries exist either way, so metrics can still be gathered in process.
type Config struct {
	// SystemMetricsAddress is the listen address of the system endpoint.
	SystemMetricsAddress *string `yaml:"system_metrics_address" envconfig:"METRICS_SYSTEM_ADDRESS"`

	// ApplicationMetricsAddress is the listen address of the application
	// endpoint.
	ApplicationMetricsAddress *string `yaml:"application_metrics_address" envconfig:"METRICS_APPLICATION_ADDRESS"`

	// ServiceName is attached to every metric as the constant label
	// service.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// DurationBuckets overrides DefaultDurationBuckets for
	// channel_operation_duration_seconds.
	DurationBuckets []float64 `yaml:"duration_buckets" envconfig:"METRICS_DURATION_BUCKETS"`
}

// Ptr returns a pointer to s. Use Ptr("") to disable an endpoint.
//
// Example:
//
//	cfg := metrics.Config{
//	    SystemMetricsAddress: metrics.Ptr(""),
//	    ServiceName:          "ingest",
//	}
func Ptr(s string) *string {
	return &s
}

func addressOrDefault(addr *string, def string) string {
	if addr == nil {
		return def
	}
	return *addr
}
