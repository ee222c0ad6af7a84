package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossdb-graphql/internal/backend"
	"crossdb-graphql/internal/naming"
)

func TestIdentifier_Quoted(t *testing.T) {
	assert.Equal(t, "`users`", Identifier("users").Quoted())
	assert.Equal(t, "`we``ird`", Identifier("we`ird").Quoted())
}

func TestTableName_TextRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TableName
		wantErr string
	}{
		{name: "bare", input: "users", want: TableName{Name: "users"}},
		{name: "qualified", input: "app.users", want: TableName{Database: "app", Name: "users"}},
		{name: "empty", input: "", wantErr: "cannot be empty"},
		{name: "trailing dot", input: "app.", wantErr: "cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded TableName
			err := decoded.UnmarshalText([]byte(tt.input))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, decoded)

			encoded, err := decoded.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(encoded))
		})
	}
}

func TestScalarTypeOf(t *testing.T) {
	tests := []struct {
		input string
		want  ScalarType
	}{
		{input: "tinyint(1)", want: ScalarTinyint},
		{input: "INT", want: ScalarInt},
		{input: "integer", want: ScalarInt},
		{input: "decimal(10,2)", want: ScalarDecimal},
		{input: "double precision", want: ScalarDouble},
		{input: "varchar(255)", want: ScalarVarchar},
		{input: "longtext", want: ScalarText},
		{input: "mediumblob", want: ScalarBlob},
		{input: "enum('a','b')", want: ScalarEnum},
		{input: "json", want: ScalarJSON},
		{input: "year", want: ScalarYear},
		{input: "geometry", want: ScalarUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ScalarTypeOf(tt.input))
		})
	}
}

func TestScalarType_Predicates(t *testing.T) {
	for _, s := range []ScalarType{ScalarTinyint, ScalarInt, ScalarDecimal, ScalarDouble, ScalarBit} {
		assert.True(t, s.IsNumeric(), "%s should be numeric", s)
	}
	for _, s := range []ScalarType{ScalarText, ScalarJSON, ScalarEnum} {
		assert.False(t, s.IsNumeric(), "%s should not be numeric", s)
	}

	assert.True(t, ScalarDatetime.IsComparable())
	assert.True(t, ScalarEnum.IsComparable())
	for _, s := range []ScalarType{ScalarJSON, ScalarBlob, ScalarSet, ScalarUnknown} {
		assert.False(t, s.IsComparable(), "%s should not be comparable", s)
	}
}

func TestScalarType_TextRoundTrip(t *testing.T) {
	for scalar := range scalarNames {
		text, err := scalar.MarshalText()
		require.NoError(t, err)

		var decoded ScalarType
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, scalar, decoded)
	}

	var decoded ScalarType
	assert.ErrorContains(t, decoded.UnmarshalText([]byte("uuid")), `unknown mysql scalar type "uuid"`)
}

func TestInstance_Contract(t *testing.T) {
	inst := New(nil)

	assert.Equal(t, backend.MySQL, inst.Kind())
	assert.Equal(t, ScalarBigint, inst.FunctionArgScalarType(FunctionArgType{Scalar: ScalarBigint}))
	assert.True(t, inst.IsNumType(ScalarDecimal))
	assert.False(t, inst.IsComparableType(ScalarJSON))
}

func TestInstance_TableGraphQLName(t *testing.T) {
	inst := New(nil)

	got, err := inst.TableGraphQLName(TableName{Name: "users"})
	require.NoError(t, err)
	assert.Equal(t, naming.GraphQLName("users"), got)

	got, err = inst.TableGraphQLName(TableName{Database: "app", Name: "users"})
	require.NoError(t, err)
	assert.Equal(t, naming.GraphQLName("app_users"), got)

	_, err = inst.TableGraphQLName(TableName{Name: "mutation"})
	assert.ErrorContains(t, err, "reserved GraphQL name")
}

func TestSourceConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		wantErr string
	}{
		{name: "tcp form", dsn: "app:secret@tcp(localhost:3306)/app?parseTime=true"},
		{name: "empty", dsn: "", wantErr: "dsn is required"},
		{name: "malformed", dsn: "user@tcp(localhost:3306)/app/extra", wantErr: "invalid dsn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SourceConfig{DSN: tt.dsn}.Validate()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
