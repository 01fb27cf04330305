package sqldb

import (
	"context"
	"database/sql"

	"github.com/datakit-io/sqlkit/pkg/query"
)

var (
	_ query.Querier  = (*DB)(nil)
	_ query.Beginner = (*DB)(nil)
	_ query.Tx       = (*sqlTx)(nil)
)

func (d *DB) Exec(ctx context.Context, sqlText string, args query.Args) (int64, error) {
	res, err := d.pool.ExecContext(ctx, sqlText, namedArgs(args)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *DB) Query(ctx context.Context, sqlText string, args query.Args) (query.Rows, error) {
	return d.pool.QueryContext(ctx, sqlText, namedArgs(args)...)
}

func (d *DB) QueryRow(ctx context.Context, sqlText string, args query.Args) query.Row {
	return d.pool.QueryRowContext(ctx, sqlText, namedArgs(args)...)
}

func (d *DB) Begin(ctx context.Context) (query.Tx, error) {
	tx, err := d.pool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqlTx{tx: tx}, nil
}

// namedArgs converts the @Name parameter map into sql.Named arguments.
func namedArgs(args query.Args) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, 0, len(args))
	for name, value := range args {
		out = append(out, sql.Named(name, value))
	}
	return out
}

type sqlTx struct {
	tx *sql.Tx
}

func (t *sqlTx) Exec(ctx context.Context, sqlText string, args query.Args) (int64, error) {
	res, err := t.tx.ExecContext(ctx, sqlText, namedArgs(args)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *sqlTx) Query(ctx context.Context, sqlText string, args query.Args) (query.Rows, error) {
	return t.tx.QueryContext(ctx, sqlText, namedArgs(args)...)
}

func (t *sqlTx) QueryRow(ctx context.Context, sqlText string, args query.Args) query.Row {
	return t.tx.QueryRowContext(ctx, sqlText, namedArgs(args)...)
}

// Commit ignores ctx because database/sql finishes transactions on the
// connection they started on.
func (t *sqlTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t *sqlTx) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}
