package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarTypeOf(t *testing.T) {
	tests := []struct {
		input string
		want  ScalarType
	}{
		{input: "integer", want: ScalarInteger},
		{input: "int4", want: ScalarInteger},
		{input: "serial", want: ScalarInteger},
		{input: "BIGINT", want: ScalarBigint},
		{input: "numeric(10,2)", want: ScalarNumeric},
		{input: "varchar(255)", want: ScalarVarchar},
		{input: "character varying", want: ScalarVarchar},
		{input: "double precision", want: ScalarDouble},
		{input: "timestamp with time zone", want: ScalarTimestamptz},
		{input: "time without time zone", want: ScalarTime},
		{input: "bool", want: ScalarBoolean},
		{input: "citext", want: ScalarText},
		{input: "bpchar", want: ScalarChar},
		{input: "uuid", want: ScalarUUID},
		{input: "jsonb", want: ScalarJSONB},
		{input: "some_enum_type", want: ScalarUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ScalarTypeOf(tt.input))
		})
	}
}

func TestScalarType_IsNumeric(t *testing.T) {
	numeric := []ScalarType{ScalarSmallint, ScalarInteger, ScalarBigint, ScalarNumeric, ScalarReal, ScalarDouble, ScalarMoney}
	for _, s := range numeric {
		assert.True(t, s.IsNumeric(), "%s should be numeric", s)
	}
	for _, s := range []ScalarType{ScalarText, ScalarBoolean, ScalarUUID, ScalarJSONB, ScalarUnknown} {
		assert.False(t, s.IsNumeric(), "%s should not be numeric", s)
	}
}

func TestScalarType_IsComparable(t *testing.T) {
	for _, s := range []ScalarType{ScalarInteger, ScalarText, ScalarDate, ScalarUUID, ScalarBoolean} {
		assert.True(t, s.IsComparable(), "%s should be comparable", s)
	}
	for _, s := range []ScalarType{ScalarJSON, ScalarJSONB, ScalarUnknown} {
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
}

func TestScalarType_UnmarshalRejectsUncataloged(t *testing.T) {
	var decoded ScalarType
	err := decoded.UnmarshalText([]byte("tinyint"))
	assert.ErrorContains(t, err, `unknown postgres scalar type "tinyint"`)
}

func TestScalarType_CompareByName(t *testing.T) {
	assert.Negative(t, ScalarBigint.Compare(ScalarText))
	assert.Zero(t, ScalarUUID.Compare(ScalarUUID))
}
