package paging

import (
	"github.com/datakit-io/sqlkit/pkg/result"
)

// Page is one page of an offset-paged query.
type Page[T any] struct {
	// Items holds at most PageSize elements in query order.
	Items []T

	// TotalCount is the caller-supplied total number of matching rows. It
	// is advisory: the engine trusts it as given.
	TotalCount int64

	// PageSize is the requested page size.
	PageSize int

	// PageNumber is 1-based.
	PageNumber int
}

// TotalPages derives the page count, rounding up.
func (p Page[T]) TotalPages() int64 {
	if p.PageSize <= 0 {
		return 0
	}
	size := int64(p.PageSize)
	return (p.TotalCount + size - 1) / size
}

// CursorPage is one page of a keyset-paged query. NextCursor is present
// exactly when HasMore is true and the page is non-empty.
type CursorPage[T any] struct {
	Items      []T
	NextCursor result.Optional[string]
	HasMore    bool
}

// Slice is one page of a load-more query: the same over-fetch contract as
// CursorPage without a persisted position.
type Slice[T any] struct {
	Items   []T
	HasMore bool
}
