package sqldb

import (
	"context"

	"go.uber.org/fx"

	"github.com/datakit-io/sqlkit/pkg/query"
)

var FXModule = fx.Module("sqldb",
	fx.Provide(
		func(db *DB) query.Querier { return db },
	),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lifecycle fx.Lifecycle, db *DB) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.GracefulShutdown()
		},
	})
}
