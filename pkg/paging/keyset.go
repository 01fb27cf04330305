package paging

import (
	"context"

	"github.com/google/uuid"

	"github.com/datakit-io/sqlkit/pkg/cursor"
	"github.com/datakit-io/sqlkit/pkg/query"
	"github.com/datakit-io/sqlkit/pkg/result"
)

// CursorSelector extracts the keyset position from a raw row: the value of
// the sort column and the unique tie-break identifier. It is called on the
// last row that survives trimming.
type CursorSelector[TData, C any] func(row TData) (column C, tieBreakID uuid.UUID)

// Keyset runs a cursor-based keyset query.
//
// The engine injects @PageSize = pageSize+1, trims the sentinel row when it
// arrives, maps the remainder, and encodes the next cursor from the last raw
// row. The caller owns the rest of the contract: decoding the previous
// cursor, passing its column and id as query parameters, and writing the
// strict tie-broken predicate, e.g.
//
//	(sort_col < @Column) OR (sort_col = @Column AND id < @Id)
//
// together with a matching ORDER BY. The engine cannot safely generate
// predicates for arbitrary sort orders, so it never tries.
func Keyset[TData, TModel, C any](ctx context.Context, q query.Querier, sqlText string, args query.Args, pageSize int, scan query.ScanFunc[TData], sel CursorSelector[TData, C], mapFn func(TData) TModel) result.Result[CursorPage[TModel]] {
	if pageSize <= 0 {
		return result.Fail[CursorPage[TModel]](result.BadRequest("page size must be positive"))
	}

	rows, hasMore, failure := fetchLookahead(ctx, q, sqlText, args, pageSize, scan)
	if failure != nil {
		return result.Fail[CursorPage[TModel]](failure)
	}

	page := CursorPage[TModel]{
		Items:      mapItems(rows, mapFn),
		NextCursor: result.None[string](),
		HasMore:    hasMore,
	}

	if hasMore && len(rows) > 0 {
		column, id := sel(rows[len(rows)-1])
		encoded, err := cursor.Encode(column, id)
		if err != nil {
			return result.Fail[CursorPage[TModel]](result.Unknown(err))
		}
		page.NextCursor = result.Some(encoded)
	}

	return result.Ok(page)
}
