// Package scalars exposes the engine's validated value types as GraphQL
// scalars for configuration and metadata APIs.
package scalars

import (
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"crossdb-graphql/internal/primitive"
	"crossdb-graphql/internal/webhook"
)

// NonNegativeInt returns a scalar accepting integers >= 0.
func NonNegativeInt() *graphql.Scalar {
	return graphql.NewScalar(graphql.ScalarConfig{
		Name:        "NonNegativeInt",
		Description: "An integer greater than or equal to zero.",
		Serialize: func(value interface{}) interface{} {
			if parsed, ok := coerceNonNegativeInt(value); ok {
				return parsed
			}
			return nil
		},
		ParseValue: func(value interface{}) interface{} {
			if parsed, ok := coerceNonNegativeInt(value); ok {
				return parsed
			}
			return nil
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			intValue, ok := valueAST.(*ast.IntValue)
			if !ok {
				return nil
			}
			parsed, err := strconv.Atoi(intValue.Value)
			if err != nil {
				return nil
			}
			if _, err := primitive.NewNonNegativeInt(parsed); err != nil {
				return nil
			}
			return parsed
		},
	})
}

// TimeoutSeconds returns a scalar accepting a non-negative whole number of
// seconds.
func TimeoutSeconds() *graphql.Scalar {
	return graphql.NewScalar(graphql.ScalarConfig{
		Name:        "TimeoutSeconds",
		Description: "A timeout expressed as a non-negative whole number of seconds.",
		Serialize: func(value interface{}) interface{} {
			if t, ok := value.(primitive.Timeout); ok {
				return t.Seconds()
			}
			if parsed, ok := coerceNonNegativeInt(value); ok {
				return parsed
			}
			return nil
		},
		ParseValue: func(value interface{}) interface{} {
			parsed, ok := coerceNonNegativeInt(value)
			if !ok {
				return nil
			}
			t, err := primitive.NewTimeout(parsed)
			if err != nil {
				return nil
			}
			return t
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			intValue, ok := valueAST.(*ast.IntValue)
			if !ok {
				return nil
			}
			parsed, err := strconv.Atoi(intValue.Value)
			if err != nil {
				return nil
			}
			t, terr := primitive.NewTimeout(parsed)
			if terr != nil {
				return nil
			}
			return t
		},
	})
}

// URLTemplate returns a scalar accepting a webhook URL template with
// optional {{VAR}} placeholders.
func URLTemplate() *graphql.Scalar {
	return graphql.NewScalar(graphql.ScalarConfig{
		Name:        "URLTemplate",
		Description: "A URL template with optional {{VAR}} environment placeholders.",
		Serialize: func(value interface{}) interface{} {
			switch v := value.(type) {
			case webhook.InputWebhook:
				return v.String()
			case string:
				return v
			default:
				return nil
			}
		},
		ParseValue: func(value interface{}) interface{} {
			s, ok := value.(string)
			if !ok {
				return nil
			}
			parsed, err := webhook.ParseInputWebhook(s)
			if err != nil {
				return nil
			}
			return parsed
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			sv, ok := valueAST.(*ast.StringValue)
			if !ok {
				return nil
			}
			parsed, err := webhook.ParseInputWebhook(sv.Value)
			if err != nil {
				return nil
			}
			return parsed
		},
	})
}

func coerceNonNegativeInt(value interface{}) (int, bool) {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case int32:
		n = int(v)
	case int64:
		n = int(v)
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if _, err := primitive.NewNonNegativeInt(n); err != nil {
		return 0, false
	}
	return n, true
}
