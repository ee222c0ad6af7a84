// Package postgres binds the backend capability contract to Postgres
// native types: schema-qualified object names, the scalar type catalog,
// order/count forms, and rendered SQL expressions.
package postgres

import (
	"fmt"
	"strings"

	"crossdb-graphql/internal/backend"
)

// Identifier is a Postgres identifier (table, column, alias, ...).
type Identifier string

// NewIdentifier validates that the identifier is non-empty.
func NewIdentifier(s string) (Identifier, error) {
	if s == "" {
		return "", fmt.Errorf("postgres identifier cannot be empty")
	}
	return Identifier(s), nil
}

// String returns the identifier as plain text.
func (i Identifier) String() string { return string(i) }

// Quoted returns the identifier double-quoted for SQL.
func (i Identifier) Quoted() string {
	return `"` + strings.ReplaceAll(string(i), `"`, `""`) + `"`
}

// Fingerprint implements the backend slot bundle.
func (i Identifier) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(i) }

// Compare orders identifiers by text.
func (i Identifier) Compare(other Identifier) int { return strings.Compare(string(i), string(other)) }

// MarshalText implements encoding.TextMarshaler.
func (i Identifier) MarshalText() ([]byte, error) { return []byte(i), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Identifier) UnmarshalText(b []byte) error {
	parsed, err := NewIdentifier(string(b))
	if err != nil {
		return err
	}
	*i = parsed
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

// DefaultSchema is the schema assumed when a qualified name omits one.
const DefaultSchema = "public"

// TableName is a schema-qualified table name. Its wire text is
// "schema.name", with the public schema omitted.
type TableName struct {
	Schema string
	Name   string
}

// NewTableName builds a table name; an empty schema means public.
func NewTableName(schema, name string) (TableName, error) {
	if name == "" {
		return TableName{}, fmt.Errorf("table name cannot be empty")
	}
	if schema == "" {
		schema = DefaultSchema
	}
	return TableName{Schema: schema, Name: name}, nil
}

// String returns the qualified text form.
func (t TableName) String() string {
	if t.Schema == DefaultSchema || t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// Fingerprint implements the backend slot bundle.
func (t TableName) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(t) }

// Compare orders table names by schema, then name.
func (t TableName) Compare(other TableName) int {
	if c := strings.Compare(t.Schema, other.Schema); c != 0 {
		return c
	}
	return strings.Compare(t.Name, other.Name)
}

// MarshalText implements encoding.TextMarshaler.
func (t TableName) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText parses "name" or "schema.name".
func (t *TableName) UnmarshalText(b []byte) error {
	schema, name := splitQualified(string(b))
	parsed, err := NewTableName(schema, name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// FunctionName is a schema-qualified SQL function name.
type FunctionName struct {
	Schema string
	Name   string
}

// NewFunctionName builds a function name; an empty schema means public.
func NewFunctionName(schema, name string) (FunctionName, error) {
	if name == "" {
		return FunctionName{}, fmt.Errorf("function name cannot be empty")
	}
	if schema == "" {
		schema = DefaultSchema
	}
	return FunctionName{Schema: schema, Name: name}, nil
}

// String returns the qualified text form.
func (f FunctionName) String() string {
	if f.Schema == DefaultSchema || f.Schema == "" {
		return f.Name
	}
	return f.Schema + "." + f.Name
}

// Fingerprint implements the backend slot bundle.
func (f FunctionName) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(f) }

// MarshalText implements encoding.TextMarshaler.
func (f FunctionName) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText parses "name" or "schema.name".
func (f *FunctionName) UnmarshalText(b []byte) error {
	schema, name := splitQualified(string(b))
	parsed, err := NewFunctionName(schema, name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func splitQualified(s string) (schema, name string) {
	if before, after, found := strings.Cut(s, "."); found {
		return before, after
	}
	return "", s
}

// ColumnName is a Postgres column name.
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

// ConstraintName is a Postgres constraint name.
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
