// Package postgres adapts a pgx connection pool to the query.Querier and
// query.Beginner interfaces. Statement parameters use @Name placeholders,
// resolved through pgx named arguments.
//
// pgx reports constraint violations as *pgconn.PgError, which the sqlerr
// classifier recognizes out of the box.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is a pgx-backed database adapter.
//
// Concurrency: the pool hands every call its own connection; DB itself holds
// no mutable state.
type DB struct {
	pool *pgxpool.Pool
}

// NewDB connects to PostgreSQL with the provided configuration and verifies
// the connection with a ping.
//
// Returns *DB concrete type (following Go best practice: "accept interfaces,
// return structs").
func NewDB(ctx context.Context, cfg Config) (*DB, error) {
	pool, err := connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error in connecting to postgres: %w", err)
	}
	return &DB{pool: pool}, nil
}

// NewDBFromPool wraps an existing pool. The caller keeps ownership of the
// pool's lifecycle.
func NewDBFromPool(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

// connect builds the pool configuration from Config, applying package
// defaults for unset pool parameters, and establishes the pool.
func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Connection.Host,
		cfg.Connection.Port,
		cfg.Connection.User,
		cfg.Connection.Password,
		cfg.Connection.DbName,
		cfg.Connection.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PostgreSQL configuration: %w", err)
	}

	maxConns := cfg.ConnectionDetails.MaxConns
	if maxConns == 0 {
		maxConns = 50
	}
	minConns := cfg.ConnectionDetails.MinConns
	if minConns == 0 {
		minConns = 5
	}
	maxLifetime := cfg.ConnectionDetails.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = 1 * time.Minute
	}

	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns
	poolCfg.MaxConnLifetime = maxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL database: %w", err)
	}

	return pool, nil
}

// GracefulShutdown closes the pool, waiting for checked-out connections to
// be released.
func (d *DB) GracefulShutdown() {
	d.pool.Close()
}

// Pool returns the underlying pgx pool for cases where direct access is
// needed.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}
