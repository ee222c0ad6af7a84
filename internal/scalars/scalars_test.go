package scalars

import (
	"testing"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossdb-graphql/internal/primitive"
	"crossdb-graphql/internal/webhook"
)

func TestNonNegativeInt_ParseValue(t *testing.T) {
	scalar := NonNegativeInt()

	tests := []struct {
		name  string
		input interface{}
		want  interface{}
	}{
		{name: "int", input: 5, want: 5},
		{name: "zero", input: 0, want: 0},
		{name: "int64", input: int64(7), want: 7},
		{name: "whole float", input: float64(3), want: 3},
		{name: "numeric string", input: "12", want: 12},
		{name: "negative", input: -1, want: nil},
		{name: "fractional float", input: 1.5, want: nil},
		{name: "non-numeric string", input: "many", want: nil},
		{name: "wrong type", input: true, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scalar.ParseValue(tt.input))
		})
	}
}

func TestNonNegativeInt_ParseLiteral(t *testing.T) {
	scalar := NonNegativeInt()

	assert.Equal(t, 42, scalar.ParseLiteral(&ast.IntValue{Value: "42"}))
	assert.Nil(t, scalar.ParseLiteral(&ast.IntValue{Value: "-3"}))
	assert.Nil(t, scalar.ParseLiteral(&ast.StringValue{Value: "42"}))
}

func TestTimeoutSeconds(t *testing.T) {
	scalar := TimeoutSeconds()

	parsed := scalar.ParseValue(10)
	timeout, ok := parsed.(primitive.Timeout)
	require.True(t, ok)
	assert.Equal(t, 10, timeout.Seconds())

	assert.Nil(t, scalar.ParseValue(-10))

	parsed = scalar.ParseLiteral(&ast.IntValue{Value: "30"})
	timeout, ok = parsed.(primitive.Timeout)
	require.True(t, ok)
	assert.Equal(t, 30, timeout.Seconds())

	assert.Equal(t, 30, scalar.Serialize(primitive.DefaultTimeout()))
}

func TestURLTemplate(t *testing.T) {
	scalar := URLTemplate()

	parsed := scalar.ParseValue("https://{{HOST}}/hook")
	hook, ok := parsed.(webhook.InputWebhook)
	require.True(t, ok)
	assert.Equal(t, "https://{{HOST}}/hook", hook.String())

	assert.Nil(t, scalar.ParseValue("https://{{HOST/hook"))
	assert.Nil(t, scalar.ParseValue(42))

	parsed = scalar.ParseLiteral(&ast.StringValue{Value: "https://auth.example.com/hook"})
	hook, ok = parsed.(webhook.InputWebhook)
	require.True(t, ok)
	assert.Equal(t, "https://auth.example.com/hook", hook.String())

	assert.Equal(t, "https://auth.example.com/hook", scalar.Serialize(hook))
	assert.Equal(t, "plain", scalar.Serialize("plain"))
}
