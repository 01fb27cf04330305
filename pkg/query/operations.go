package query

import (
	"context"

	"github.com/datakit-io/sqlkit/pkg/result"
	"github.com/datakit-io/sqlkit/pkg/sqlerr"
)

// writeDirection selects how a foreign-key violation is reported. A missing
// referenced row is the caller's fault (bad request); a row that is still
// referenced by others is a state clash (conflict).
type writeDirection int

const (
	dirInsert writeDirection = iota
	dirUpdate
	dirDelete
)

type writeSettings struct {
	uniqueMessage          string
	missingRefMessage      string
	stillReferencedMessage string
}

func defaultWriteSettings() writeSettings {
	return writeSettings{
		uniqueMessage:          "record already exists",
		missingRefMessage:      "referenced record does not exist",
		stillReferencedMessage: "record is still referenced",
	}
}

// WriteOption overrides the caller-facing message attached to a classified
// constraint violation.
type WriteOption func(*writeSettings)

// WithUniqueMessage sets the message for unique-constraint violations.
func WithUniqueMessage(msg string) WriteOption {
	return func(s *writeSettings) { s.uniqueMessage = msg }
}

// WithMissingReferenceMessage sets the message for foreign-key violations on
// inserts and updates.
func WithMissingReferenceMessage(msg string) WriteOption {
	return func(s *writeSettings) { s.missingRefMessage = msg }
}

// WithStillReferencedMessage sets the message for foreign-key violations on
// deletes.
func WithStillReferencedMessage(msg string) WriteOption {
	return func(s *writeSettings) { s.stillReferencedMessage = msg }
}

func applyWriteOptions(opts []WriteOption) writeSettings {
	s := defaultWriteSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// violationFailure translates a driver error into a typed failure using the
// constraint classifier, falling back to Unknown.
func violationFailure(err error, s writeSettings, dir writeDirection) *result.Error {
	switch sqlerr.Classify(err) {
	case sqlerr.KindUnique:
		return result.AlreadyExists(s.uniqueMessage)
	case sqlerr.KindForeignKey:
		if dir == dirDelete {
			return result.Conflict(s.stillReferencedMessage)
		}
		return result.BadRequest(s.missingRefMessage)
	default:
		return result.Unknown(err)
	}
}

// Get runs a single-row query. No matching row fails with NotFound(key); a
// second row, if any, is ignored.
func Get[T any](ctx context.Context, q Querier, sqlText string, args Args, scan ScanFunc[T], key any) result.Result[T] {
	rows, err := q.Query(ctx, sqlText, args)
	if err != nil {
		return result.Fail[T](result.Unknown(err))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return result.Fail[T](result.Unknown(err))
		}
		return result.Fail[T](result.NotFound(key))
	}

	value, err := scan(rows)
	if err != nil {
		return result.Fail[T](result.Unknown(err))
	}
	return result.Ok(value)
}

// GetOptional runs a single-row query where absence is a valid outcome: no
// matching row succeeds with None.
func GetOptional[T any](ctx context.Context, q Querier, sqlText string, args Args, scan ScanFunc[T]) result.Result[result.Optional[T]] {
	rows, err := q.Query(ctx, sqlText, args)
	if err != nil {
		return result.Fail[result.Optional[T]](result.Unknown(err))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return result.Fail[result.Optional[T]](result.Unknown(err))
		}
		return result.Ok(result.None[T]())
	}

	value, err := scan(rows)
	if err != nil {
		return result.Fail[result.Optional[T]](result.Unknown(err))
	}
	return result.Ok(result.Some(value))
}

// GetScalar runs a query returning exactly one value, such as a count or an
// aggregate. A NULL scalar is unexpected and fails with Unknown.
func GetScalar[T any](ctx context.Context, q Querier, sqlText string, args Args) result.Result[T] {
	var value *T
	if err := q.QueryRow(ctx, sqlText, args).Scan(&value); err != nil {
		return result.Fail[T](result.Unknown(err))
	}
	if value == nil {
		var zero T
		return result.Fail[T](result.Unknownf("scalar query returned null for %T", zero))
	}
	return result.Ok(*value)
}

// GetMany runs a query and collects every row in result order.
func GetMany[T any](ctx context.Context, q Querier, sqlText string, args Args, scan ScanFunc[T]) result.Result[[]T] {
	items, err := Select(ctx, q, sqlText, args, scan)
	if err != nil {
		return result.Fail[[]T](result.Unknown(err))
	}
	return result.Ok(items)
}

// Select is the raw row-collection primitive underneath GetMany and the
// paging engines. It returns a plain error so engines can apply their own
// failure policy.
func Select[T any](ctx context.Context, q Querier, sqlText string, args Args, scan ScanFunc[T]) ([]T, error) {
	rows, err := q.Query(ctx, sqlText, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Insert runs an insert statement. Zero rows affected is impossible for a
// well-formed insert and reports Unknown; constraint violations are
// classified with insert direction.
func (e *Executor) Insert(ctx context.Context, sqlText string, args Args, opts ...WriteOption) result.Result[int64] {
	s := applyWriteOptions(opts)

	affected, err := e.Exec(ctx, sqlText, args)
	if err != nil {
		return result.Fail[int64](violationFailure(err, s, dirInsert))
	}
	if affected == 0 {
		return result.Fail[int64](result.Unknownf("insert affected no rows"))
	}
	return result.Ok(affected)
}

// Update runs an update statement that must touch at least one row. Zero
// rows affected fails with NotFound(key).
func (e *Executor) Update(ctx context.Context, sqlText string, args Args, key any, opts ...WriteOption) result.Result[int64] {
	s := applyWriteOptions(opts)

	affected, err := e.Exec(ctx, sqlText, args)
	if err != nil {
		return result.Fail[int64](violationFailure(err, s, dirUpdate))
	}
	if affected == 0 {
		return result.Fail[int64](result.NotFound(key))
	}
	return result.Ok(affected)
}

// Delete runs a delete statement that must touch at least one row. Zero rows
// affected fails with NotFound(key); a foreign-key violation means the row
// is still referenced and reports Conflict.
func (e *Executor) Delete(ctx context.Context, sqlText string, args Args, key any, opts ...WriteOption) result.Result[int64] {
	s := applyWriteOptions(opts)

	affected, err := e.Exec(ctx, sqlText, args)
	if err != nil {
		return result.Fail[int64](violationFailure(err, s, dirDelete))
	}
	if affected == 0 {
		return result.Fail[int64](result.NotFound(key))
	}
	return result.Ok(affected)
}

// Execute runs an arbitrary write statement and returns the rows-affected
// count. Zero is a valid count, never a failure.
func (e *Executor) Execute(ctx context.Context, sqlText string, args Args, opts ...WriteOption) result.Result[int64] {
	return e.execWithCount(ctx, sqlText, args, dirUpdate, opts)
}

// UpdateWithCount is Update without the at-least-one-row requirement.
func (e *Executor) UpdateWithCount(ctx context.Context, sqlText string, args Args, opts ...WriteOption) result.Result[int64] {
	return e.execWithCount(ctx, sqlText, args, dirUpdate, opts)
}

// DeleteWithCount is Delete without the at-least-one-row requirement.
func (e *Executor) DeleteWithCount(ctx context.Context, sqlText string, args Args, opts ...WriteOption) result.Result[int64] {
	return e.execWithCount(ctx, sqlText, args, dirDelete, opts)
}

func (e *Executor) execWithCount(ctx context.Context, sqlText string, args Args, dir writeDirection, opts []WriteOption) result.Result[int64] {
	s := applyWriteOptions(opts)

	affected, err := e.Exec(ctx, sqlText, args)
	if err != nil {
		return result.Fail[int64](violationFailure(err, s, dir))
	}
	return result.Ok(affected)
}

// InsertReturning runs an insert with a RETURNING (or OUTPUT) clause and
// reads back the written row.
func InsertReturning[T any](ctx context.Context, q Querier, sqlText string, args Args, scan ScanFunc[T], opts ...WriteOption) result.Result[T] {
	s := applyWriteOptions(opts)

	rows, err := q.Query(ctx, sqlText, args)
	if err != nil {
		return result.Fail[T](violationFailure(err, s, dirInsert))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return result.Fail[T](violationFailure(err, s, dirInsert))
		}
		return result.Fail[T](result.Unknownf("insert returned no row"))
	}

	value, err := scan(rows)
	if err != nil {
		return result.Fail[T](result.Unknown(err))
	}
	return result.Ok(value)
}

// UpdateReturning runs an update with a RETURNING clause and reads back the
// updated row. No row means the target does not exist.
func UpdateReturning[T any](ctx context.Context, q Querier, sqlText string, args Args, scan ScanFunc[T], key any, opts ...WriteOption) result.Result[T] {
	s := applyWriteOptions(opts)

	rows, err := q.Query(ctx, sqlText, args)
	if err != nil {
		return result.Fail[T](violationFailure(err, s, dirUpdate))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return result.Fail[T](violationFailure(err, s, dirUpdate))
		}
		return result.Fail[T](result.NotFound(key))
	}

	value, err := scan(rows)
	if err != nil {
		return result.Fail[T](result.Unknown(err))
	}
	return result.Ok(value)
}
