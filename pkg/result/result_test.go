package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	r := Ok(42)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Value())
	assert.Nil(t, r.Err())
}

func TestFail(t *testing.T) {
	r := Fail[int](NotFound("user-1"))

	assert.False(t, r.IsOk())
	require.NotNil(t, r.Err())
	assert.Equal(t, KindNotFound, r.Err().Kind())
	assert.Equal(t, "user-1", r.Err().Key())
	assert.Zero(t, r.Value())
}

func TestFailNilErrorIsNormalized(t *testing.T) {
	r := Fail[string](nil)

	require.NotNil(t, r.Err())
	assert.Equal(t, KindUnknown, r.Err().Kind())
}

func TestZeroValueIsFailure(t *testing.T) {
	var r Result[int]

	assert.True(t, r.IsErr())
	require.NotNil(t, r.Err())
	assert.Equal(t, KindUnknown, r.Err().Kind())
}

func TestFromLookup(t *testing.T) {
	v := "hello"

	ok := FromLookup(&v, "k")
	require.True(t, ok.IsOk())
	assert.Equal(t, "hello", ok.Value())

	missing := FromLookup[string](nil, "k")
	require.True(t, missing.IsErr())
	assert.Equal(t, KindNotFound, missing.Err().Kind())
	assert.Equal(t, "k", missing.Err().Key())
}

func TestFromNullable(t *testing.T) {
	missing := FromNullable[int](nil, BadRequest("missing id"))

	require.True(t, missing.IsErr())
	assert.Equal(t, KindBadRequest, missing.Err().Kind())
	assert.Equal(t, "missing id", missing.Err().Message())
}

func TestMap(t *testing.T) {
	doubled := Map(Ok(21), func(v int) int { return v * 2 })
	require.True(t, doubled.IsOk())
	assert.Equal(t, 42, doubled.Value())

	failed := Map(Fail[int](Conflict("busy")), func(v int) int { return v * 2 })
	require.True(t, failed.IsErr())
	assert.Equal(t, KindConflict, failed.Err().Kind())
}

func TestFlatMap(t *testing.T) {
	r := FlatMap(Ok(2), func(v int) Result[string] {
		if v > 0 {
			return Ok("positive")
		}
		return Fail[string](BadRequest("not positive"))
	})

	require.True(t, r.IsOk())
	assert.Equal(t, "positive", r.Value())
}

func TestMatch(t *testing.T) {
	got := Match(Fail[int](NotFound(7)), func(int) string { return "ok" }, func(e *Error) string { return e.Kind().String() })

	assert.Equal(t, "not_found", got)
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"not found", NotFound(1), KindNotFound},
		{"already exists", AlreadyExists("dup"), KindAlreadyExists},
		{"bad request", BadRequest("bad"), KindBadRequest},
		{"conflict", Conflict("clash"), KindConflict},
		{"unknown", Unknown(cause), KindUnknown},
		{"unknownf", Unknownf("n=%d", 3), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestUnknownUnwrap(t *testing.T) {
	cause := errors.New("boom")

	err := Unknown(cause)
	assert.True(t, errors.Is(err, cause))

	assert.NotEmpty(t, Unknown(nil).Message())
}
