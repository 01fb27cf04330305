package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	some := Some("v")
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	none := None[string]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, "fallback", none.OrElse("fallback"))
}

func TestZeroOptionalIsNone(t *testing.T) {
	var o Optional[int]
	assert.False(t, o.IsPresent())
}

func TestOfNullable(t *testing.T) {
	n := 5
	assert.True(t, OfNullable(&n).IsPresent())
	assert.False(t, OfNullable[int](nil).IsPresent())
}

func TestMapOptional(t *testing.T) {
	mapped := MapOptional(Some(3), func(v int) int { return v + 1 })
	assert.Equal(t, 4, mapped.MustGet())

	// Map on None must not invoke the function.
	called := false
	mapped = MapOptional(None[int](), func(v int) int {
		called = true
		return v
	})
	assert.False(t, called)
	assert.False(t, mapped.IsPresent())
}
