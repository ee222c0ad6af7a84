package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossdb-graphql/internal/backend"
)

func TestIdentifier_Quoted(t *testing.T) {
	tests := []struct {
		name  string
		input Identifier
		want  string
	}{
		{name: "plain", input: "users", want: `"users"`},
		{name: "mixed case preserved", input: "UserAccounts", want: `"UserAccounts"`},
		{name: "embedded quote doubled", input: `we"ird`, want: `"we""ird"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Quoted())
		})
	}
}

func TestNewIdentifier_RejectsEmpty(t *testing.T) {
	_, err := NewIdentifier("")
	assert.ErrorContains(t, err, "cannot be empty")
}

func TestIdentifier_Ordering(t *testing.T) {
	ids := []Identifier{"users", "accounts", "orders"}
	backend.SortSlots(ids)
	assert.Equal(t, []Identifier{"accounts", "orders", "users"}, ids)
}

func TestTableName(t *testing.T) {
	tests := []struct {
		name       string
		schema     string
		table      string
		wantString string
		wantErr    string
	}{
		{name: "public schema omitted", schema: "public", table: "users", wantString: "users"},
		{name: "empty schema means public", schema: "", table: "users", wantString: "users"},
		{name: "other schema qualified", schema: "app", table: "users", wantString: "app.users"},
		{name: "empty name rejected", schema: "app", table: "", wantErr: "cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := NewTableName(tt.schema, tt.table)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantString, parsed.String())
		})
	}
}

func TestTableName_TextRoundTrip(t *testing.T) {
	for _, text := range []string{"users", "app.users"} {
		var decoded TableName
		require.NoError(t, decoded.UnmarshalText([]byte(text)))

		encoded, err := decoded.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, text, string(encoded))
	}

	// The bare form and the explicit public form decode to the same value.
	var bare, explicit TableName
	require.NoError(t, bare.UnmarshalText([]byte("users")))
	require.NoError(t, explicit.UnmarshalText([]byte("public.users")))
	assert.Equal(t, explicit, bare)
}

func TestTableName_Compare(t *testing.T) {
	tables := []TableName{
		{Schema: "public", Name: "users"},
		{Schema: "app", Name: "users"},
		{Schema: "app", Name: "orders"},
	}
	backend.SortSlots(tables)
	assert.Equal(t, []TableName{
		{Schema: "app", Name: "orders"},
		{Schema: "app", Name: "users"},
		{Schema: "public", Name: "users"},
	}, tables)
}

func TestColumnName_UnmarshalRejectsEmpty(t *testing.T) {
	var decoded ColumnName
	assert.ErrorContains(t, decoded.UnmarshalText(nil), "cannot be empty")
}

func TestConstraintName_UnmarshalRejectsEmpty(t *testing.T) {
	var decoded ConstraintName
	assert.ErrorContains(t, decoded.UnmarshalText(nil), "cannot be empty")
}
