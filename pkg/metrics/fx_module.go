package metrics

import (
	"go.uber.org/fx"

	"github.com/datakit-io/sqlkit/pkg/query"
)

// FXModule defines the Fx module for the metrics package. It expects a
// prometheus.Registerer in the graph; applications without one can provide
// prometheus.DefaultRegisterer.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewQueryStats,
		func(stats *QueryStats) query.StatsRecorder { return stats },
	),
)
