// Package mysql binds the backend capability contract to MySQL-compatible
// engines. It is the second compiled-in backend; its existence keeps the
// contract honest about being engine-agnostic.
package mysql

import (
	"fmt"
	"strings"

	"crossdb-graphql/internal/backend"
)

// Identifier is a MySQL identifier.
type Identifier string

// String returns the identifier as plain text.
func (i Identifier) String() string { return string(i) }

// Quoted returns the identifier backtick-quoted for SQL.
func (i Identifier) Quoted() string {
	return "`" + strings.ReplaceAll(string(i), "`", "``") + "`"
}

// Fingerprint implements the backend slot bundle.
func (i Identifier) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(i) }

// Compare orders identifiers by text.
func (i Identifier) Compare(other Identifier) int { return strings.Compare(string(i), string(other)) }

// MarshalText implements encoding.TextMarshaler.
func (i Identifier) MarshalText() ([]byte, error) { return []byte(i), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Identifier) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("mysql identifier cannot be empty")
	}
	*i = Identifier(b)
	return nil
}

// Alias is an identifier introduced by a query rather than the catalog.
type Alias Identifier

// Fingerprint implements the backend slot bundle.
func (a Alias) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(a) }

// MarshalText implements encoding.TextMarshaler.
func (a Alias) MarshalText() ([]byte, error) { return []byte(a), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alias) UnmarshalText(b []byte) error {
	return (*Identifier)(a).UnmarshalText(b)
}

// TableName is a database-qualified table name; MySQL has no schemas
// below the database level. Wire text is "database.name", database
// optional.
type TableName struct {
	Database string `json:"database,omitempty"`
	Name     string `json:"name"`
}

// String returns the qualified text form.
func (t TableName) String() string {
	if t.Database == "" {
		return t.Name
	}
	return t.Database + "." + t.Name
}

// Fingerprint implements the backend slot bundle.
func (t TableName) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(t) }

// Compare orders table names by database, then name.
func (t TableName) Compare(other TableName) int {
	if c := strings.Compare(t.Database, other.Database); c != 0 {
		return c
	}
	return strings.Compare(t.Name, other.Name)
}

// MarshalText implements encoding.TextMarshaler.
func (t TableName) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText parses "name" or "database.name".
func (t *TableName) UnmarshalText(b []byte) error {
	s := string(b)
	if s == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if db, name, found := strings.Cut(s, "."); found {
		if name == "" {
			return fmt.Errorf("table name cannot be empty in %q", s)
		}
		*t = TableName{Database: db, Name: name}
		return nil
	}
	*t = TableName{Name: s}
	return nil
}

// FunctionName is a database-qualified stored function name.
type FunctionName struct {
	Database string `json:"database,omitempty"`
	Name     string `json:"name"`
}

// String returns the qualified text form.
func (f FunctionName) String() string {
	if f.Database == "" {
		return f.Name
	}
	return f.Database + "." + f.Name
}

// Fingerprint implements the backend slot bundle.
func (f FunctionName) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(f) }

// MarshalText implements encoding.TextMarshaler.
func (f FunctionName) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText parses "name" or "database.name".
func (f *FunctionName) UnmarshalText(b []byte) error {
	var t TableName
	if err := t.UnmarshalText(b); err != nil {
		return err
	}
	*f = FunctionName{Database: t.Database, Name: t.Name}
	return nil
}

// ColumnName is a MySQL column name.
type ColumnName string

// String returns the column name as plain text.
func (c ColumnName) String() string { return string(c) }

// Fingerprint implements the backend slot bundle.
func (c ColumnName) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(c) }

// Compare orders column names by text.
func (c ColumnName) Compare(other ColumnName) int { return strings.Compare(string(c), string(other)) }

// MarshalText implements encoding.TextMarshaler.
func (c ColumnName) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColumnName) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("column name cannot be empty")
	}
	*c = ColumnName(b)
	return nil
}

// ConstraintName is a MySQL constraint name.
type ConstraintName string

// String returns the constraint name as plain text.
func (c ConstraintName) String() string { return string(c) }

// Fingerprint implements the backend slot bundle.
func (c ConstraintName) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(c) }

// MarshalText implements encoding.TextMarshaler.
func (c ConstraintName) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ConstraintName) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("constraint name cannot be empty")
	}
	*c = ConstraintName(b)
	return nil
}

// BasicOrderType is the sort direction of an order-by item.
type BasicOrderType int

const (
	OrderAsc BasicOrderType = iota
	OrderDesc
)

// String returns the wire text of the direction.
func (o BasicOrderType) String() string {
	if o == OrderDesc {
		return "desc"
	}
	return "asc"
}

// Fingerprint implements the backend slot bundle.
func (o BasicOrderType) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(o.String()) }

// NullsOrderType places null values relative to non-null ones. MySQL has
// no NULLS FIRST/LAST clause; the compiler emulates the placement with an
// IS NULL sort key.
type NullsOrderType int

const (
	NullsFirst NullsOrderType = iota
	NullsLast
)

// String returns the wire text of the placement.
func (n NullsOrderType) String() string {
	if n == NullsLast {
		return "last"
	}
	return "first"
}

// Fingerprint implements the backend slot bundle.
func (n NullsOrderType) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(n.String()) }

// CountType is the shape of a count aggregate.
type CountType int

const (
	CountStar CountType = iota
	CountColumns
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
// MySQL LIKE is case-insensitive under default collations, so there is no
// separate ILIKE family.
type SQLOperator string

const (
	OpEq      SQLOperator = "="
	OpNotEq   SQLOperator = "<>"
	OpGT      SQLOperator = ">"
	OpLT      SQLOperator = "<"
	OpGTE     SQLOperator = ">="
	OpLTE     SQLOperator = "<="
	OpLike    SQLOperator = "LIKE"
	OpNotLike SQLOperator = "NOT LIKE"
)

// String returns the operator's SQL spelling.
func (o SQLOperator) String() string { return string(o) }

// Fingerprint implements the backend slot bundle.
func (o SQLOperator) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(o) }

// SQLExpression is a rendered SQL fragment stored in metadata.
type SQLExpression struct {
	sql string
}

// NewSQLExpression wraps a raw SQL fragment.
func NewSQLExpression(sql string) (SQLExpression, error) {
	if sql == "" {
		return SQLExpression{}, fmt.Errorf("SQL expression cannot be empty")
	}
	return SQLExpression{sql: sql}, nil
}

// SQL returns the rendered fragment.
func (e SQLExpression) SQL() string { return e.sql }

// Fingerprint implements the backend slot bundle.
func (e SQLExpression) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(e.sql) }

// MarshalText implements encoding.TextMarshaler.
func (e SQLExpression) MarshalText() ([]byte, error) { return []byte(e.sql), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *SQLExpression) UnmarshalText(b []byte) error {
	parsed, err := NewSQLExpression(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ScalarValue is a typed literal: the scalar type paired with its textual
// representation.
type ScalarValue struct {
	Type    ScalarType `json:"type"`
	Literal string     `json:"literal"`
}

// Fingerprint implements the backend slot bundle.
func (v ScalarValue) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(v) }

// FunctionArgType is the declared type of a stored function argument.
type FunctionArgType struct {
	Scalar   ScalarType `json:"scalar"`
	Optional bool       `json:"optional"`
}

// Fingerprint implements the backend slot bundle.
func (a FunctionArgType) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(a) }
