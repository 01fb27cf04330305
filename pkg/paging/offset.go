package paging

import (
	"context"

	"github.com/datakit-io/sqlkit/pkg/query"
	"github.com/datakit-io/sqlkit/pkg/result"
)

// OffsetRequest describes an offset-paged query.
type OffsetRequest struct {
	// PageNumber is 1-based.
	PageNumber int

	// PageSize is the number of rows per page; must be positive.
	PageSize int

	// TotalCount is the total number of matching rows, obtained by the
	// caller through its own count query (GetScalar is the usual vehicle).
	// The engine trusts it as given; a stale count is not an engine error.
	TotalCount int64
}

// Offset runs an offset-paged query. The SQL text must reference @Offset and
// @PageSize, typically as "OFFSET @Offset LIMIT @PageSize"; the engine
// injects both. There is no over-fetch here: the caller's count query stands
// in for the lookahead.
func Offset[TData, TModel any](ctx context.Context, q query.Querier, sqlText string, args query.Args, req OffsetRequest, scan query.ScanFunc[TData], mapFn func(TData) TModel) result.Result[Page[TModel]] {
	if req.PageSize <= 0 {
		return result.Fail[Page[TModel]](result.BadRequest("page size must be positive"))
	}
	if req.PageNumber <= 0 {
		return result.Fail[Page[TModel]](result.BadRequest("page number must be positive"))
	}

	merged, err := query.MergeArgs(args, query.Args{
		query.ParamPageSize: req.PageSize,
		query.ParamOffset:   (req.PageNumber - 1) * req.PageSize,
	})
	if err != nil {
		return result.Fail[Page[TModel]](mergeFailure(err))
	}

	rows, err := query.Select(ctx, q, sqlText, merged, scan)
	if err != nil {
		return result.Fail[Page[TModel]](result.Unknown(err))
	}

	return result.Ok(Page[TModel]{
		Items:      mapItems(rows, mapFn),
		TotalCount: req.TotalCount,
		PageSize:   req.PageSize,
		PageNumber: req.PageNumber,
	})
}
