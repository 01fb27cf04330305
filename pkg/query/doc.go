// Package query executes parameterized SQL and normalizes every outcome into
// a typed result.
//
// The package owns no connection logic. It consumes a narrow Querier
// interface, implemented by the postgres (pgx), gormdb (GORM), and sqldb
// (database/sql) adapter packages, and layers three things on top:
//
//   - Generic read operations (Get, GetOptional, GetScalar, GetMany) that
//     convert "no row" and driver failures into result.Result values.
//   - Write operations (Insert, Update, Delete and their WithCount variants)
//     that apply a zero-rows-affected policy and translate constraint
//     violations through the sqlerr classifier: unique violations become
//     AlreadyExists, foreign-key violations become BadRequest on inserts and
//     updates (the referenced row is missing) and Conflict on deletes (the
//     row is still referenced).
//   - InTransaction, which ties transaction begin/commit/rollback to the
//     success or failure of a unit of work. Rollback is guaranteed on every
//     exit path, including panics and context cancellation.
//
// Parameters are named and referenced as @Name in SQL text across all
// adapters. The keys "PageSize" and "Offset" are reserved for the paging
// package; MergeArgs fails fast when a caller supplies them.
//
// An Executor decorates a Querier with zap logging, OpenTelemetry spans, and
// optional query metrics, and is itself a Querier, so it can be handed to
// the generic operations and the paging engines directly.
package query
