package paging

import (
	"context"
	"errors"

	"github.com/datakit-io/sqlkit/pkg/query"
	"github.com/datakit-io/sqlkit/pkg/result"
)

// fetchLookahead runs the shared over-fetch: it injects @PageSize = pageSize+1,
// collects the rows, and trims the sentinel row when it arrived. The trimmed
// rows are raw TData; mapping happens in the engines, after this returns.
func fetchLookahead[TData any](ctx context.Context, q query.Querier, sqlText string, args query.Args, pageSize int, scan query.ScanFunc[TData]) ([]TData, bool, *result.Error) {
	merged, err := query.MergeArgs(args, query.Args{query.ParamPageSize: pageSize + 1})
	if err != nil {
		return nil, false, mergeFailure(err)
	}

	rows, err := query.Select(ctx, q, sqlText, merged, scan)
	if err != nil {
		return nil, false, result.Unknown(err)
	}

	if len(rows) > pageSize {
		return rows[:pageSize], true, nil
	}
	return rows, false, nil
}

// mergeFailure distinguishes the caller's reserved-key mistake from
// unexpected merge errors.
func mergeFailure(err error) *result.Error {
	if errors.Is(err, query.ErrReservedParam) {
		return result.BadRequest(err.Error())
	}
	return result.Unknown(err)
}

// mapItems applies the row mapper in order. It runs strictly after trimming.
func mapItems[TData, TModel any](rows []TData, mapFn func(TData) TModel) []TModel {
	items := make([]TModel, len(rows))
	for i, row := range rows {
		items[i] = mapFn(row)
	}
	return items
}
