package query

import (
	"errors"
	"fmt"
)

// Args holds named statement parameters, referenced as @Name in SQL text.
type Args map[string]any

// Reserved parameter names injected by the paging engines. Caller-supplied
// args must not use them.
const (
	ParamPageSize = "PageSize"
	ParamOffset   = "Offset"
)

// ErrReservedParam is returned by MergeArgs when caller args already contain
// a key the engine needs to inject.
var ErrReservedParam = errors.New("reserved parameter already present")

// MergeArgs copies args and adds the reserved entries. Neither input map is
// modified. A collision on a reserved key fails fast instead of silently
// overwriting the caller's value.
func MergeArgs(args Args, reserved Args) (Args, error) {
	merged := make(Args, len(args)+len(reserved))
	for k, v := range args {
		merged[k] = v
	}
	for k, v := range reserved {
		if _, exists := merged[k]; exists {
			return nil, fmt.Errorf("%w: %q", ErrReservedParam, k)
		}
		merged[k] = v
	}
	return merged, nil
}
