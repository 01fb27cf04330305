package query

import (
	"context"
)

// MultiResult is a sequential, forward-only reader over the result sets of a
// single round-trip that returns more than one of them. Close it when done.
//
// Multi-set statements require adapter support: the sqldb and gormdb
// adapters expose the driver's NextResultSet, the pgx adapter does not.
type MultiResult struct {
	rows Rows
}

// QueryMulti runs a statement expected to return several result sets.
func QueryMulti(ctx context.Context, q Querier, sqlText string, args Args) (*MultiResult, error) {
	rows, err := q.Query(ctx, sqlText, args)
	if err != nil {
		return nil, err
	}
	return &MultiResult{rows: rows}, nil
}

// NextSet advances to the next result set, reporting false when none remain.
// Rows left unread in the current set are discarded.
func (m *MultiResult) NextSet() bool {
	return m.rows.NextResultSet()
}

// Close releases the underlying reader.
func (m *MultiResult) Close() error {
	return m.rows.Close()
}

// ReadSet collects every row of the current result set in order.
func ReadSet[T any](m *MultiResult, scan ScanFunc[T]) ([]T, error) {
	var items []T
	for m.rows.Next() {
		item, err := scan(m.rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := m.rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
