// Package metrics publishes Prometheus series for statement execution. The
// QueryStats collector plugs into query.WithStats and records one duration
// observation per statement, labelled by operation and outcome.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/datakit-io/sqlkit/pkg/query"
)

const (
	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

// Buckets chosen for database round trips, from sub-millisecond cache hits
// up to multi-second analytical statements.
var durationBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

var _ query.StatsRecorder = (*QueryStats)(nil)

// QueryStats implements query.StatsRecorder on top of Prometheus collectors.
type QueryStats struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

// NewQueryStats creates the collectors and registers them with the given
// registerer. Returns a *QueryStats concrete type.
func NewQueryStats(cfg Config, registerer prometheus.Registerer) (*QueryStats, error) {
	constLabels := prometheus.Labels{}
	if cfg.ServiceName != "" {
		constLabels["service"] = cfg.ServiceName
	}

	stats := &QueryStats{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   cfg.Namespace,
				Name:        "sql_query_duration_seconds",
				Help:        "Duration of SQL statement executions.",
				Buckets:     durationBuckets,
				ConstLabels: constLabels,
			},
			[]string{"operation", "outcome"},
		),
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Name:        "sql_queries_total",
				Help:        "Total number of SQL statement executions.",
				ConstLabels: constLabels,
			},
			[]string{"operation", "outcome"},
		),
	}

	for _, collector := range []prometheus.Collector{stats.duration, stats.total} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// ObserveQuery records a single statement execution.
func (s *QueryStats) ObserveQuery(operation string, elapsed time.Duration, failed bool) {
	outcome := outcomeOK
	if failed {
		outcome = outcomeFailed
	}
	s.duration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
	s.total.WithLabelValues(operation, outcome).Inc()
}
