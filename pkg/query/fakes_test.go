package query_test

import (
	"context"
	"errors"
	"reflect"

	"github.com/datakit-io/sqlkit/pkg/query"
)

// The fakes below stand in for a database adapter. Rows are stored as plain
// value slices and assigned to scan targets by reflection; a nil cell scans
// as the target's zero value, which is how NULL reaches a pointer target.

type fakeRows struct {
	sets   [][][]any // result sets -> rows -> columns
	setIdx int
	rowIdx int
	err    error
	closed bool
}

func rowsOf(rows ...[]any) *fakeRows {
	return &fakeRows{sets: [][][]any{rows}}
}

func (r *fakeRows) Next() bool {
	if r.closed || r.err != nil || r.setIdx >= len(r.sets) {
		return false
	}
	if r.rowIdx >= len(r.sets[r.setIdx]) {
		return false
	}
	r.rowIdx++
	return true
}

func (r *fakeRows) NextResultSet() bool {
	if r.setIdx+1 >= len(r.sets) {
		return false
	}
	r.setIdx++
	r.rowIdx = 0
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.sets[r.setIdx][r.rowIdx-1]
	for i := range dest {
		dv := reflect.ValueOf(dest[i]).Elem()
		if row[i] == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		dv.Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) Close() error {
	r.closed = true
	return nil
}

type execCall struct {
	sqlText string
	args    query.Args
}

type fakeDB struct {
	rows         *fakeRows
	queryErr     error
	execAffected int64
	execErr      error
	scanErr      error

	execCalls  []execCall
	queryCalls []execCall

	tx       *fakeTx
	beginErr error
}

func (f *fakeDB) Exec(_ context.Context, sqlText string, args query.Args) (int64, error) {
	f.execCalls = append(f.execCalls, execCall{sqlText: sqlText, args: args})
	return f.execAffected, f.execErr
}

func (f *fakeDB) Query(_ context.Context, sqlText string, args query.Args) (query.Rows, error) {
	f.queryCalls = append(f.queryCalls, execCall{sqlText: sqlText, args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.rows == nil {
		return rowsOf(), nil
	}
	return f.rows, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sqlText string, args query.Args) query.Row {
	rows, err := f.Query(ctx, sqlText, args)
	if err != nil {
		return errRow{err: err}
	}
	return firstRow{rows: rows, scanErr: f.scanErr}
}

func (f *fakeDB) Begin(context.Context) (query.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	if f.tx == nil {
		f.tx = &fakeTx{fakeDB: &fakeDB{}}
	}
	return f.tx, nil
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type firstRow struct {
	rows    query.Rows
	scanErr error
}

func (r firstRow) Scan(dest ...any) error {
	defer r.rows.Close()
	if r.scanErr != nil {
		return r.scanErr
	}
	if !r.rows.Next() {
		return errors.New("no rows in result set")
	}
	return r.rows.Scan(dest...)
}

type fakeTx struct {
	*fakeDB
	commits     int
	rollbacks   int
	commitErr   error
	rollbackErr error
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.commits++
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rollbacks++
	return t.rollbackErr
}

// scanPair reads an (id, name) row.
type pair struct {
	ID   int64
	Name string
}

func scanPair(row query.Row) (pair, error) {
	var p pair
	err := row.Scan(&p.ID, &p.Name)
	return p, err
}
