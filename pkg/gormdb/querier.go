package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/datakit-io/sqlkit/pkg/query"
)

// Compile-time verification that the adapter satisfies the query interfaces.
var (
	_ query.Querier  = (*DB)(nil)
	_ query.Beginner = (*DB)(nil)
	_ query.Tx       = (*gormTx)(nil)
)

// Exec implements query.Querier.
func (d *DB) Exec(ctx context.Context, sqlText string, args query.Args) (int64, error) {
	return execOn(d.client.WithContext(ctx), sqlText, args)
}

// Query implements query.Querier. The returned rows are the driver's
// *sql.Rows, so multi-result-set statements work through this adapter.
func (d *DB) Query(ctx context.Context, sqlText string, args query.Args) (query.Rows, error) {
	return queryOn(d.client.WithContext(ctx), sqlText, args)
}

// QueryRow implements query.Querier.
func (d *DB) QueryRow(ctx context.Context, sqlText string, args query.Args) query.Row {
	return queryRowOn(d.client.WithContext(ctx), sqlText, args)
}

// Begin implements query.Beginner.
func (d *DB) Begin(ctx context.Context) (query.Tx, error) {
	tx := d.client.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTx{tx: tx}, nil
}

func execOn(client *gorm.DB, sqlText string, args query.Args) (int64, error) {
	res := client.Exec(sqlText, namedArgs(args)...)
	return res.RowsAffected, res.Error
}

func queryOn(client *gorm.DB, sqlText string, args query.Args) (query.Rows, error) {
	return client.Raw(sqlText, namedArgs(args)...).Rows()
}

func queryRowOn(client *gorm.DB, sqlText string, args query.Args) query.Row {
	return client.Raw(sqlText, namedArgs(args)...).Row()
}

// namedArgs passes Args as a GORM named-argument map. Statements without
// parameters skip the named-argument path entirely.
func namedArgs(args query.Args) []any {
	if len(args) == 0 {
		return nil
	}
	return []any{map[string]any(args)}
}

// gormTx adapts a GORM transaction to query.Tx.
type gormTx struct {
	tx *gorm.DB
}

func (t *gormTx) Exec(_ context.Context, sqlText string, args query.Args) (int64, error) {
	return execOn(t.tx, sqlText, args)
}

func (t *gormTx) Query(_ context.Context, sqlText string, args query.Args) (query.Rows, error) {
	return queryOn(t.tx, sqlText, args)
}

func (t *gormTx) QueryRow(_ context.Context, sqlText string, args query.Args) query.Row {
	return queryRowOn(t.tx, sqlText, args)
}

func (t *gormTx) Commit(context.Context) error {
	return t.tx.Commit().Error
}

func (t *gormTx) Rollback(context.Context) error {
	return t.tx.Rollback().Error
}
