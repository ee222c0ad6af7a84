package postgres

import (
	"fmt"

	"crossdb-graphql/internal/backend"
)

// BasicOrderType is the sort direction of an order-by item.
type BasicOrderType int

const (
	// OrderAsc sorts ascending.
	OrderAsc BasicOrderType = iota
	// OrderDesc sorts descending.
	OrderDesc
)

// String returns the wire text of the direction.
func (o BasicOrderType) String() string {
	if o == OrderDesc {
		return "desc"
	}
	return "asc"
}

// SQL returns the SQL keyword for the direction.
func (o BasicOrderType) SQL() string {
	if o == OrderDesc {
		return "DESC"
	}
	return "ASC"
}

// Fingerprint implements the backend slot bundle.
func (o BasicOrderType) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(o.String()) }

// MarshalText implements encoding.TextMarshaler.
func (o BasicOrderType) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *BasicOrderType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "asc":
		*o = OrderAsc
	case "desc":
		*o = OrderDesc
	default:
		return fmt.Errorf("expecting either 'asc' or 'desc' for order, got %q", b)
	}
	return nil
}

// NullsOrderType places null values relative to non-null ones.
type NullsOrderType int

const (
	// NullsFirst sorts nulls before non-null values.
	NullsFirst NullsOrderType = iota
	// NullsLast sorts nulls after non-null values.
	NullsLast
)

// String returns the wire text of the placement.
func (n NullsOrderType) String() string {
	if n == NullsLast {
		return "last"
	}
	return "first"
}

// SQL returns the SQL clause for the placement.
func (n NullsOrderType) SQL() string {
	if n == NullsLast {
		return "NULLS LAST"
	}
	return "NULLS FIRST"
}

// Fingerprint implements the backend slot bundle.
func (n NullsOrderType) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(n.String()) }

// MarshalText implements encoding.TextMarshaler.
func (n NullsOrderType) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NullsOrderType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "first":
		*n = NullsFirst
	case "last":
		*n = NullsLast
	default:
		return fmt.Errorf("expecting either 'first' or 'last' for nulls order, got %q", b)
	}
	return nil
}

// CountType is the shape of a count aggregate.
type CountType int

const (
	// CountStar is COUNT(*).
	CountStar CountType = iota
	// CountColumns is COUNT over a column list.
	CountColumns
	// CountDistinctColumns is COUNT(DISTINCT ...) over a column list.
	CountDistinctColumns
)

// String names the count shape.
func (c CountType) String() string {
	switch c {
	case CountColumns:
		return "columns"
	case CountDistinctColumns:
		return "distinct_columns"
	default:
		return "star"
	}
}

// Fingerprint implements the backend slot bundle.
func (c CountType) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(c.String()) }

// SQLOperator is a comparison operator usable in boolean expressions.
type SQLOperator string

const (
	OpEq       SQLOperator = "="
	OpNotEq    SQLOperator = "<>"
	OpGT       SQLOperator = ">"
	OpLT       SQLOperator = "<"
	OpGTE      SQLOperator = ">="
	OpLTE      SQLOperator = "<="
	OpLike     SQLOperator = "LIKE"
	OpNotLike  SQLOperator = "NOT LIKE"
	OpILike    SQLOperator = "ILIKE"
	OpNotILike SQLOperator = "NOT ILIKE"
)

// String returns the operator's SQL spelling.
func (o SQLOperator) String() string { return string(o) }

// Fingerprint implements the backend slot bundle.
func (o SQLOperator) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(o) }
