package query

import (
	"context"
)

// Querier is the narrow execution surface the query layer needs from a
// database adapter. SQL text uses @Name placeholders resolved from Args.
//
// Implementations:
//   - postgres.DB (pgx connection pool)
//   - gormdb.DB (GORM client)
//   - sqldb.DB (database/sql)
type Querier interface {
	// Exec runs a statement that returns no rows and reports the number of
	// rows affected.
	Exec(ctx context.Context, sqlText string, args Args) (int64, error)

	// Query runs a statement that returns rows. The caller must close the
	// returned Rows.
	Query(ctx context.Context, sqlText string, args Args) (Rows, error)

	// QueryRow runs a statement expected to return at most one row. Errors
	// are deferred until Scan.
	QueryRow(ctx context.Context, sqlText string, args Args) Row
}

// Rows is a sequential, forward-only reader over one or more result sets.
// It is the interface boundary of *sql.Rows; adapters without multi-set
// support return false from NextResultSet.
type Rows interface {
	Next() bool
	NextResultSet() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Row is the interface boundary of a single-row read.
type Row interface {
	Scan(dest ...any) error
}

// Tx is a transaction-scoped Querier. The transaction is owned by whoever
// began it and must be finished exactly once via Commit or Rollback;
// Rollback after a successful Commit is a no-op error that callers may
// ignore.
type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Beginner starts transactions. Adapters backed by a connection pool
// implement it alongside Querier.
type Beginner interface {
	Begin(ctx context.Context) (Tx, error)
}

// ScanFunc materializes one row into a value. It must be pure row-reading:
// no I/O beyond Scan, so that mapping and trimming order guarantees hold.
type ScanFunc[T any] func(row Row) (T, error)
