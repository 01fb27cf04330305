package query

import "time"

// Config tunes Executor instrumentation.
type Config struct {
	// SlowQueryThreshold is the duration above which a statement is logged
	// at warn level. Zero applies the package default of 200ms.
	SlowQueryThreshold time.Duration

	// LogStatements logs every statement's SQL text at debug level.
	// Parameters are never logged.
	LogStatements bool
}

const defaultSlowQueryThreshold = 200 * time.Millisecond

func (c Config) slowThreshold() time.Duration {
	if c.SlowQueryThreshold <= 0 {
		return defaultSlowQueryThreshold
	}
	return c.SlowQueryThreshold
}
