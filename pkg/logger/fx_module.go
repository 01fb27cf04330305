package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule defines the Fx module for the logger package.
var FXModule = fx.Module("logger",
	fx.Provide(
		New,
	),
	fx.Invoke(RegisterLifecycle),
)

// RegisterLifecycle flushes buffered log entries on shutdown.
func RegisterLifecycle(lifecycle fx.Lifecycle, log *zap.Logger) {
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync on stderr fails on some platforms; the entries are
			// unbuffered there anyway.
			_ = log.Sync()
			return nil
		},
	})
}
