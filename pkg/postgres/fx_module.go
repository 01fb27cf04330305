package postgres

import (
	"context"

	"go.uber.org/fx"

	"github.com/datakit-io/sqlkit/pkg/query"
)

var FXModule = fx.Module("postgres",
	fx.Provide(
		// Pool construction happens during graph setup, before any
		// lifecycle context exists.
		func(cfg Config) (*DB, error) { return NewDB(context.Background(), cfg) },
		func(db *DB) query.Querier { return db },
	),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lifecycle fx.Lifecycle, db *DB) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.GracefulShutdown()
			return nil
		},
	})
}
