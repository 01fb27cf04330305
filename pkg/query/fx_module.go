package query

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXParams collects the Executor's dependencies from the fx graph. Only the
// adapter is mandatory.
type FXParams struct {
	fx.In

	DB     Querier
	Logger *zap.Logger   `optional:"true"`
	Stats  StatsRecorder `optional:"true"`
}

func newExecutorFromParams(p FXParams) *Executor {
	opts := []Option{}
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger))
	}
	if p.Stats != nil {
		opts = append(opts, WithStats(p.Stats))
	}
	return NewExecutor(p.DB, opts...)
}

var FXModule = fx.Module("query",
	fx.Provide(
		newExecutorFromParams,
	),
)
