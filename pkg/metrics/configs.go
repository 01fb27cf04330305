package metrics

// Config defines the configuration structure for the query metrics.
type Config struct {
	// Namespace sets a global prefix for all metrics registered by this
	// package. Useful when running multiple services in the same
	// Prometheus cluster.
	//
	// Example:
	//   Namespace: "billing"
	//   → Metric name becomes "billing_sql_query_duration_seconds"
	//
	// This setting can be configured via:
	//   - YAML configuration with the "namespace" key
	//   - Environment variable METRICS_NAMESPACE
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName identifies the service exposing metrics. It is
	// attached as a constant label to every series so dashboards can
	// distinguish services sharing a scrape target.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable METRICS_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
