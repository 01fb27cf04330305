package sqldb

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakit-io/sqlkit/pkg/query"
)

func TestNamedArgsConvertsParameterMap(t *testing.T) {
	got := namedArgs(query.Args{"Id": 7, "Name": "alpha"})

	require.Len(t, got, 2)
	byName := map[string]any{}
	for _, arg := range got {
		named, ok := arg.(sql.NamedArg)
		require.True(t, ok)
		byName[named.Name] = named.Value
	}
	assert.Equal(t, 7, byName["Id"])
	assert.Equal(t, "alpha", byName["Name"])
}

func TestNamedArgsEmpty(t *testing.T) {
	assert.Nil(t, namedArgs(nil))
	assert.Nil(t, namedArgs(query.Args{}))
}
