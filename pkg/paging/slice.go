package paging

import (
	"context"

	"github.com/datakit-io/sqlkit/pkg/query"
	"github.com/datakit-io/sqlkit/pkg/result"
)

// LoadMore runs a "load more" query: the keyset over-fetch and trim without
// position tracking. Callers that want continuation resend the last item's
// key as an ordinary query parameter themselves.
func LoadMore[TData, TModel any](ctx context.Context, q query.Querier, sqlText string, args query.Args, pageSize int, scan query.ScanFunc[TData], mapFn func(TData) TModel) result.Result[Slice[TModel]] {
	if pageSize <= 0 {
		return result.Fail[Slice[TModel]](result.BadRequest("page size must be positive"))
	}

	rows, hasMore, failure := fetchLookahead(ctx, q, sqlText, args, pageSize, scan)
	if failure != nil {
		return result.Fail[Slice[TModel]](failure)
	}

	return result.Ok(Slice[TModel]{
		Items:   mapItems(rows, mapFn),
		HasMore: hasMore,
	})
}
