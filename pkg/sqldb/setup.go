// Package sqldb adapts a database/sql connection pool to the query.Querier
// contract. It works with any registered driver that understands named
// arguments of the form @Name (sql.Named), which includes the SQL Server and
// SQLite drivers and, via its simple protocol, lib/pq.
//
// This is the only adapter that supports multi-result-set statements, because
// *sql.Rows exposes NextResultSet natively. Use it together with
// query.QueryMulti when a single round trip returns several result sets.
package sqldb

import (
	"database/sql"
	"fmt"
	"time"
)

type Config struct {
	Connection ConnectionDetails
}

type ConnectionDetails struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

const (
	defaultMaxOpenConns    = 50
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = time.Minute
)

// DB wraps a *sql.DB and implements query.Querier and query.Beginner.
type DB struct {
	pool *sql.DB
}

// Open opens a connection pool for the given driver and DSN and applies the
// pool settings from cfg. Returns a *DB concrete type.
func Open(driverName, dataSourceName string, cfg Config) (*DB, error) {
	pool, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection pool: %w", driverName, err)
	}

	details := cfg.Connection
	if details.MaxOpenConns <= 0 {
		details.MaxOpenConns = defaultMaxOpenConns
	}
	if details.MaxIdleConns <= 0 {
		details.MaxIdleConns = defaultMaxIdleConns
	}
	if details.ConnMaxLifetime <= 0 {
		details.ConnMaxLifetime = defaultConnMaxLifetime
	}

	pool.SetMaxOpenConns(details.MaxOpenConns)
	pool.SetMaxIdleConns(details.MaxIdleConns)
	pool.SetConnMaxLifetime(details.ConnMaxLifetime)

	return &DB{pool: pool}, nil
}

// NewDBFromPool wraps an already configured *sql.DB. The caller keeps
// ownership of the pool's lifecycle settings.
func NewDBFromPool(pool *sql.DB) *DB {
	return &DB{pool: pool}
}

// Pool exposes the underlying *sql.DB for code that needs raw access.
func (d *DB) Pool() *sql.DB {
	return d.pool
}

func (d *DB) GracefulShutdown() error {
	return d.pool.Close()
}
