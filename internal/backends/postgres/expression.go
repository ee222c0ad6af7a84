package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"crossdb-graphql/internal/backend"
)

// SQLExpression is a rendered SQL fragment stored in metadata (computed
// field definitions, check conditions, join predicates). Metadata
// expressions carry no runtime parameters, so the rendered text is the
// whole value and expressions compare structurally.
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

// FromSqlizer renders a squirrel expression into a metadata expression.
// Parameterized expressions are rejected: metadata stores only literal
// fragments.
func FromSqlizer(s sq.Sqlizer) (SQLExpression, error) {
	sql, args, err := s.ToSql()
	if err != nil {
		return SQLExpression{}, fmt.Errorf("cannot render SQL expression: %w", err)
	}
	if len(args) > 0 {
		return SQLExpression{}, fmt.Errorf("metadata SQL expressions cannot be parameterized (%d args)", len(args))
	}
	return NewSQLExpression(sql)
}

// ColumnCompare builds a comparison between two columns, as used for join
// predicates.
func ColumnCompare(op SQLOperator, left, right ColumnName) (SQLExpression, error) {
	return FromSqlizer(sq.Expr(fmt.Sprintf("%s %s %s",
		Identifier(left).Quoted(), op, Identifier(right).Quoted())))
}

// SQL returns the rendered fragment.
func (e SQLExpression) SQL() string { return e.sql }

// String returns the rendered fragment.
func (e SQLExpression) String() string { return e.sql }

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
