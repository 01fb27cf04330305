// Package cursor encodes and decodes opaque keyset-pagination positions.
//
// A cursor captures where a page ended: the sort-column value of the last
// item plus a unique tie-break identifier. It travels to clients as a
// URL-safe base64 string and is decoded once per request; it is never stored.
// Decoding is tolerant by contract: cursors arrive from untrusted URLs, so
// malformed input yields None instead of an error.
package cursor

import (
	"encoding/base64"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/datakit-io/sqlkit/pkg/result"
)

// Cursor is a decoded keyset position. C is the sort column's type and must
// round-trip through JSON (time.Time, string, and integer types all do).
type Cursor[C any] struct {
	Column C         `json:"c"`
	ID     uuid.UUID `json:"id"`
}

// Encode serializes a position into its URL-safe wire form.
func Encode[C any](column C, id uuid.UUID) (string, error) {
	payload, err := json.Marshal(Cursor[C]{Column: column, ID: id})
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// Decode parses a wire-form cursor. Any malformed input (bad base64, bad
// JSON, a column value that does not fit C) yields None.
func Decode[C any](raw string) result.Optional[Cursor[C]] {
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return result.None[Cursor[C]]()
	}

	var c Cursor[C]
	if err := json.Unmarshal(payload, &c); err != nil {
		return result.None[Cursor[C]]()
	}
	return result.Some(c)
}
