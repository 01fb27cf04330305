package query

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// StatsRecorder receives one observation per executed statement. The metrics
// package provides a Prometheus-backed implementation.
type StatsRecorder interface {
	ObserveQuery(operation string, elapsed time.Duration, failed bool)
}

// Executor decorates a Querier with logging, tracing, and metrics. It
// implements Querier itself, so it can be passed anywhere a plain adapter
// can, including the paging engines and the generic read operations.
//
// An Executor is immutable after construction and safe for concurrent use as
// long as the underlying adapter is. Each call owns its own connection and
// statement lifecycle; no state is shared across calls.
type Executor struct {
	db     Querier
	cfg    Config
	log    *zap.Logger
	tracer trace.Tracer
	stats  StatsRecorder
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the zap logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Executor) {
		if log != nil {
			e.log = log
		}
	}
}

// WithTracer sets the OpenTelemetry tracer used for per-statement spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Executor) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// WithStats sets the statement metrics sink.
func WithStats(stats StatsRecorder) Option {
	return func(e *Executor) {
		e.stats = stats
	}
}

// WithConfig sets instrumentation tuning.
func WithConfig(cfg Config) Option {
	return func(e *Executor) {
		e.cfg = cfg
	}
}

// NewExecutor wraps a database adapter.
//
// Returns the concrete *Executor (accept interfaces, return structs).
func NewExecutor(db Querier, opts ...Option) *Executor {
	e := &Executor{
		db:     db,
		log:    zap.NewNop(),
		tracer: noop.NewTracerProvider().Tracer("sqlkit"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// withQuerier returns a shallow copy of the Executor bound to q, keeping the
// logger, tracer, and stats of the original. Used to scope an Executor to a
// transaction.
func (e *Executor) withQuerier(q Querier) *Executor {
	clone := *e
	clone.db = q
	return &clone
}

// Exec implements Querier.
func (e *Executor) Exec(ctx context.Context, sqlText string, args Args) (int64, error) {
	ctx, finish := e.observe(ctx, "exec", sqlText)
	affected, err := e.db.Exec(ctx, sqlText, args)
	finish(err)
	return affected, err
}

// Query implements Querier.
func (e *Executor) Query(ctx context.Context, sqlText string, args Args) (Rows, error) {
	ctx, finish := e.observe(ctx, "query", sqlText)
	rows, err := e.db.Query(ctx, sqlText, args)
	finish(err)
	return rows, err
}

// QueryRow implements Querier.
func (e *Executor) QueryRow(ctx context.Context, sqlText string, args Args) Row {
	ctx, finish := e.observe(ctx, "query_row", sqlText)
	row := e.db.QueryRow(ctx, sqlText, args)
	finish(nil)
	return row
}

// Begin starts a transaction on the underlying adapter. It fails when the
// adapter does not implement Beginner.
func (e *Executor) Begin(ctx context.Context) (Tx, error) {
	b, ok := e.db.(Beginner)
	if !ok {
		return nil, fmt.Errorf("adapter %T does not support transactions", e.db)
	}
	return b.Begin(ctx)
}

// observe opens a span and returns a completion callback that records
// duration, outcome, and slow-query warnings.
func (e *Executor) observe(ctx context.Context, operation, sqlText string) (context.Context, func(error)) {
	started := time.Now()

	ctx, span := e.tracer.Start(ctx, "sqlkit."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.operation", operation)),
	)

	if e.cfg.LogStatements {
		e.log.Debug("executing statement",
			zap.String("operation", operation),
			zap.String("sql", sqlText),
		)
	}

	return ctx, func(err error) {
		elapsed := time.Since(started)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			e.log.Warn("statement failed",
				zap.String("operation", operation),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
		} else if elapsed >= e.cfg.slowThreshold() {
			e.log.Warn("slow statement",
				zap.String("operation", operation),
				zap.Duration("elapsed", elapsed),
				zap.String("sql", sqlText),
			)
		}
		span.End()

		if e.stats != nil {
			e.stats.ObserveQuery(operation, elapsed, err != nil)
		}
	}
}

var _ Querier = (*Executor)(nil)
