package metadata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossdb-graphql/internal/backends/postgres"
	"crossdb-graphql/internal/metadata"
)

func TestRelType_TextRoundTrip(t *testing.T) {
	for _, rt := range []metadata.RelType{metadata.ObjRel, metadata.ArrRel} {
		text, err := rt.MarshalText()
		require.NoError(t, err)

		var decoded metadata.RelType
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, rt, decoded)
	}

	assert.Equal(t, "object", metadata.ObjRel.String())
	assert.Equal(t, "array", metadata.ArrRel.String())
}

func TestRelType_UnmarshalRejectsUnknown(t *testing.T) {
	var decoded metadata.RelType
	err := decoded.UnmarshalText([]byte("many"))
	assert.ErrorContains(t, err, `expecting either 'object' or 'array' for rel_type, got "many"`)
}

func testRelInfo(t *testing.T) metadata.RelInfo[postgres.ColumnName, postgres.TableName] {
	t.Helper()
	remote, err := postgres.NewTableName("public", "articles")
	require.NoError(t, err)
	rel, err := metadata.NewRelInfo(
		metadata.RelName("articles"),
		metadata.ArrRel,
		map[postgres.ColumnName]postgres.ColumnName{"id": "author_id"},
		remote,
		false,
		false,
	)
	require.NoError(t, err)
	return rel
}

func TestNewRelInfo_Validation(t *testing.T) {
	remote, err := postgres.NewTableName("", "articles")
	require.NoError(t, err)

	_, err = metadata.NewRelInfo(
		metadata.RelName(""),
		metadata.ObjRel,
		map[postgres.ColumnName]postgres.ColumnName{"author_id": "id"},
		remote,
		false,
		true,
	)
	assert.ErrorContains(t, err, "name cannot be empty")

	_, err = metadata.NewRelInfo(
		metadata.RelName("author"),
		metadata.ObjRel,
		map[postgres.ColumnName]postgres.ColumnName{},
		remote,
		false,
		true,
	)
	assert.ErrorContains(t, err, "column mapping cannot be empty")
}

func TestRelInfo_JSONRoundTrip(t *testing.T) {
	rel := testRelInfo(t)

	encoded, err := json.Marshal(rel)
	require.NoError(t, err)

	var decoded metadata.RelInfo[postgres.ColumnName, postgres.TableName]
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, rel.Name, decoded.Name)
	assert.Equal(t, rel.Type, decoded.Type)
	assert.Equal(t, rel.Mapping, decoded.Mapping)
	assert.Equal(t, rel.RemoteTable, decoded.RemoteTable)
	assert.Equal(t, rel.IsManual, decoded.IsManual)
	assert.Equal(t, rel.IsNullable, decoded.IsNullable)
}

func TestRelInfo_UnmarshalValidates(t *testing.T) {
	var decoded metadata.RelInfo[postgres.ColumnName, postgres.TableName]

	err := json.Unmarshal([]byte(`{
		"name": "articles",
		"type": "array",
		"mapping": {},
		"remote_table": "articles"
	}`), &decoded)
	assert.ErrorContains(t, err, "column mapping cannot be empty")

	err = json.Unmarshal([]byte(`{
		"name": "articles",
		"type": "many_to_many",
		"mapping": {"id": "author_id"},
		"remote_table": "articles"
	}`), &decoded)
	assert.ErrorContains(t, err, "expecting either 'object' or 'array'")
}

func TestRelInfo_FingerprintStable(t *testing.T) {
	a := testRelInfo(t)
	b := testRelInfo(t)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.IsNullable = true
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
