// Package paging provides three pagination strategies over raw row streams.
//
//   - Offset: classic page-number paging. The caller supplies the total
//     count (from its own count query) and the engine injects @Offset and
//     @PageSize parameters.
//   - Keyset: cursor-based paging with a stable tie-break. The engine
//     over-fetches one row to detect whether more pages exist, trims the
//     sentinel row, and encodes the last remaining row's position as an
//     opaque cursor.
//   - LoadMore: the same over-fetch mechanics without a cursor, for UIs that
//     resend the last-seen key themselves.
//
// The engines own the over-fetch/trim/encode algorithm and parameter
// injection, nothing more. In particular the keyset predicate is the
// caller's SQL, because arbitrary multi-column sort orders are expressible
// in SQL but not safely generalizable by an engine:
//
//	SELECT id, created_at, title
//	FROM posts
//	WHERE (@Column::timestamptz IS NULL)
//	   OR (created_at < @Column OR (created_at = @Column AND id < @Id))
//	ORDER BY created_at DESC, id DESC
//	LIMIT @PageSize
//
// Row mapping (TData -> TModel) is applied after trimming, so a mapper never
// sees the discarded sentinel row.
package paging
