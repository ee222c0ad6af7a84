package metadata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossdb-graphql/internal/backends/postgres"
	"crossdb-graphql/internal/metadata"
)

func TestJSONAggSelect_String(t *testing.T) {
	assert.Equal(t, "multiple_rows", metadata.JSONAggMultipleRows.String())
	assert.Equal(t, "single_object", metadata.JSONAggSingleObject.String())
}

func TestMutateResp_JSON(t *testing.T) {
	resp := metadata.MutateResp{
		AffectedRows: 2,
		Returning: []json.RawMessage{
			json.RawMessage(`{"id":1}`),
			json.RawMessage(`{"id":2}`),
		},
	}

	encoded, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"affected_rows":2,"returning":[{"id":1},{"id":2}]}`, string(encoded))

	// Returning is omitted entirely when no returning clause was requested.
	encoded, err = json.Marshal(metadata.MutateResp{AffectedRows: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"affected_rows":0}`, string(encoded))
}

func TestWithTable(t *testing.T) {
	table, err := postgres.NewTableName("app", "users")
	require.NoError(t, err)

	wrapped := metadata.WithTable[postgres.TableName, int]{
		Source: metadata.DefaultSource(),
		Table:  table,
		Value:  7,
	}

	encoded, err := json.Marshal(wrapped)
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"default","table":"app.users","value":7}`, string(encoded))
}
