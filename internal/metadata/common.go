package metadata

import (
	"encoding/json"

	"crossdb-graphql/internal/backend"
	"crossdb-graphql/internal/naming"
)

// JSONAggSelect controls how a selection set is aggregated into JSON:
// a JSON array of rows, or a single object.
type JSONAggSelect int

const (
	// JSONAggMultipleRows aggregates matching rows into a JSON array.
	JSONAggMultipleRows JSONAggSelect = iota
	// JSONAggSingleObject selects exactly one row as a JSON object.
	JSONAggSingleObject
)

// String names the aggregation mode for logs.
func (j JSONAggSelect) String() string {
	if j == JSONAggSingleObject {
		return "single_object"
	}
	return "multiple_rows"
}

// SQLGenCtx carries the SQL-generation options threaded through the
// compiler.
type SQLGenCtx struct {
	// StringifyNumerics renders big numerics as JSON strings so clients
	// never lose precision.
	StringifyNumerics bool `mapstructure:"stringify_numerics" json:"stringify_numerics"`
	// DangerousBooleanCollapse restores the legacy collapse of null
	// boolean filter values to true.
	DangerousBooleanCollapse bool `mapstructure:"dangerous_boolean_collapse" json:"dangerous_boolean_collapse"`
}

// MutateResp is the outcome of a mutation: the affected row count and,
// when a returning clause was requested, the returned rows.
type MutateResp struct {
	AffectedRows int               `json:"affected_rows"`
	Returning    []json.RawMessage `json:"returning,omitempty"`
}

// WithTable pairs a value with the source and table it belongs to.
type WithTable[T backend.WireSlot[T], V any] struct {
	Source SourceName `json:"source"`
	Table  T          `json:"table"`
	Value  V          `json:"value"`
}

// InpValInfo is the GraphQL-typing metadata for one input value: its name,
// optional description and default, and a reference to its GraphQL type.
type InpValInfo struct {
	Name        naming.GraphQLName `json:"name"`
	Description string             `json:"description,omitempty"`
	DefValue    json.RawMessage    `json:"default_value,omitempty"`
	Type        string             `json:"type"`
}
