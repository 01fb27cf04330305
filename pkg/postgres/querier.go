package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/datakit-io/sqlkit/pkg/query"
)

// Compile-time verification that the adapter satisfies the query interfaces.
var (
	_ query.Querier  = (*DB)(nil)
	_ query.Beginner = (*DB)(nil)
	_ query.Tx       = (*pgxTx)(nil)
)

// Exec implements query.Querier.
func (d *DB) Exec(ctx context.Context, sqlText string, args query.Args) (int64, error) {
	tag, err := d.pool.Exec(ctx, sqlText, namedArgs(args)...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Query implements query.Querier.
func (d *DB) Query(ctx context.Context, sqlText string, args query.Args) (query.Rows, error) {
	rows, err := d.pool.Query(ctx, sqlText, namedArgs(args)...)
	if err != nil {
		return nil, err
	}
	return &pgxRows{rows: rows}, nil
}

// QueryRow implements query.Querier.
func (d *DB) QueryRow(ctx context.Context, sqlText string, args query.Args) query.Row {
	return d.pool.QueryRow(ctx, sqlText, namedArgs(args)...)
}

// Begin implements query.Beginner.
func (d *DB) Begin(ctx context.Context) (query.Tx, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &pgxTx{tx: tx}, nil
}

// namedArgs converts Args to pgx named arguments. Statements without
// parameters are passed through untouched so pgx skips the rewrite.
func namedArgs(args query.Args) []any {
	if len(args) == 0 {
		return nil
	}
	return []any{pgx.NamedArgs(args)}
}

// pgxRows adapts pgx.Rows to query.Rows. pgx reads a single result set per
// query, so NextResultSet always reports false.
type pgxRows struct {
	rows pgx.Rows
}

func (r *pgxRows) Next() bool          { return r.rows.Next() }
func (r *pgxRows) NextResultSet() bool { return false }

func (r *pgxRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *pgxRows) Err() error             { return r.rows.Err() }

func (r *pgxRows) Close() error {
	r.rows.Close()
	return nil
}

// pgxTx adapts pgx.Tx to query.Tx.
type pgxTx struct {
	tx pgx.Tx
}

func (t *pgxTx) Exec(ctx context.Context, sqlText string, args query.Args) (int64, error) {
	tag, err := t.tx.Exec(ctx, sqlText, namedArgs(args)...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (t *pgxTx) Query(ctx context.Context, sqlText string, args query.Args) (query.Rows, error) {
	rows, err := t.tx.Query(ctx, sqlText, namedArgs(args)...)
	if err != nil {
		return nil, err
	}
	return &pgxRows{rows: rows}, nil
}

func (t *pgxTx) QueryRow(ctx context.Context, sqlText string, args query.Args) query.Row {
	return t.tx.QueryRow(ctx, sqlText, namedArgs(args)...)
}

// Commit finishes the transaction. Committing an already-finished
// transaction returns pgx.ErrTxClosed.
func (t *pgxTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback aborts the transaction. Rolling back after Commit returns
// pgx.ErrTxClosed, which callers treat as a no-op.
func (t *pgxTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
