package query

import (
	"context"

	"github.com/datakit-io/sqlkit/pkg/result"
)

// InTransaction runs fn inside a transaction on the Executor's adapter.
//
// The transaction is owned by this call: fn receives a transaction-scoped
// Executor and must route every statement through it. On a successful result
// the transaction commits; on a failed result it rolls back and the failure
// is returned unchanged; on a panic it rolls back and the panic is converted
// to an Unknown failure rather than escaping. Rollback runs even when ctx is
// already cancelled, so no transaction leaks.
//
// There is no retry here. Retrying a serialization failure or a deadlock is
// the caller's policy.
func InTransaction[T any](ctx context.Context, e *Executor, fn func(ctx context.Context, tx *Executor) result.Result[T]) result.Result[T] {
	tx, err := e.Begin(ctx)
	if err != nil {
		return result.Fail[T](result.Unknown(err))
	}

	committed := false
	defer func() {
		if !committed {
			// The rollback must still reach the database when ctx was the
			// reason we are bailing out.
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	res := runUnit(ctx, e.withQuerier(tx), fn)
	if res.IsErr() {
		return res
	}

	if err := tx.Commit(ctx); err != nil {
		return result.Fail[T](violationFailure(err, defaultWriteSettings(), dirUpdate))
	}
	committed = true
	return res
}

// runUnit invokes the unit of work, converting a panic into a failed result.
func runUnit[T any](ctx context.Context, tx *Executor, fn func(ctx context.Context, tx *Executor) result.Result[T]) (res result.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Fail[T](result.Unknownf("transactional unit of work panicked: %v", r))
		}
	}()
	return fn(ctx, tx)
}
