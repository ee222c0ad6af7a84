package postgres

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"crossdb-graphql/internal/backend"
	"crossdb-graphql/internal/naming"
	"crossdb-graphql/internal/primitive"
)

// PoolSettings holds connection pool parameters.
type PoolSettings struct {
	MaxOpen     int           `mapstructure:"max_open" json:"max_open"`
	MaxIdle     int           `mapstructure:"max_idle" json:"max_idle"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime" json:"max_lifetime"`
}

// SourceConfig is the Postgres connection configuration for one data
// source. The config type is bound one-to-one to backend.Postgres in the
// registry, so holding a *SourceConfig determines the backend kind.
type SourceConfig struct {
	// DSN is a libpq-style connection string or URL.
	DSN string `mapstructure:"dsn" json:"dsn"`

	Pool PoolSettings `mapstructure:"pool" json:"pool"`

	// ConnectionTimeout bounds connection establishment.
	ConnectionTimeout primitive.Timeout `mapstructure:"connection_timeout" json:"connection_timeout"`
}

// Validate checks the DSN syntax without connecting.
func (c SourceConfig) Validate() error {
	if c.DSN == "" {
		return fmt.Errorf("postgres source: dsn is required")
	}
	if _, err := pgconn.ParseConfig(c.DSN); err != nil {
		return fmt.Errorf("postgres source: invalid dsn: %w", err)
	}
	return nil
}

// Instance implements the backend capability contract for Postgres. It is
// stateless apart from naming configuration; all operations are pure.
type Instance struct {
	namer *naming.Namer
}

// New creates the Postgres contract instance.
func New(namer *naming.Namer) *Instance {
	if namer == nil {
		namer = naming.Default()
	}
	return &Instance{namer: namer}
}

var _ backend.Backend[TableName, FunctionName, FunctionArgType, ScalarType] = (*Instance)(nil)

// Kind reports backend.Postgres.
func (*Instance) Kind() backend.Kind { return backend.Postgres }

// FunctionArgScalarType returns the scalar used for GraphQL typing of a
// function argument.
func (*Instance) FunctionArgScalarType(arg FunctionArgType) ScalarType {
	return arg.Scalar
}

// IsComparableType delegates to the scalar type catalog.
func (*Instance) IsComparableType(scalar ScalarType) bool { return scalar.IsComparable() }

// IsNumType delegates to the scalar type catalog.
func (*Instance) IsNumType(scalar ScalarType) bool { return scalar.IsNumeric() }

// TableGraphQLName converts a qualified table name into a GraphQL
// identifier: the bare table name for the public schema, schema-prefixed
// otherwise.
func (*Instance) TableGraphQLName(table TableName) (naming.GraphQLName, error) {
	return qualifiedGraphQLName(table.Schema, table.Name)
}

// FunctionGraphQLName converts a qualified function name into a GraphQL
// identifier with the same rules as TableGraphQLName.
func (*Instance) FunctionGraphQLName(function FunctionName) (naming.GraphQLName, error) {
	return qualifiedGraphQLName(function.Schema, function.Name)
}

// Namer exposes the instance's relationship-name suggestions.
func (i *Instance) Namer() *naming.Namer { return i.namer }

func qualifiedGraphQLName(schema, name string) (naming.GraphQLName, error) {
	qualified := name
	if schema != DefaultSchema && schema != "" {
		qualified = schema + "_" + name
	}
	return naming.FromSQLName(qualified)
}

func init() {
	backend.MustRegister(backend.Binding{
		Kind: backend.Postgres,
		Slots: backend.TypeMap{
			Identifier:      backend.SlotOf[Identifier](),
			Alias:           backend.SlotOf[Alias](),
			TableName:       backend.SlotOf[TableName](),
			FunctionName:    backend.SlotOf[FunctionName](),
			FunctionArgType: backend.SlotOf[FunctionArgType](),
			ConstraintName:  backend.SlotOf[ConstraintName](),
			BasicOrderType:  backend.SlotOf[BasicOrderType](),
			NullsOrderType:  backend.SlotOf[NullsOrderType](),
			CountType:       backend.SlotOf[CountType](),
			Column:          backend.SlotOf[ColumnName](),
			ScalarValue:     backend.SlotOf[ScalarValue](),
			ScalarType:      backend.SlotOf[ScalarType](),
			SQLExpression:   backend.SlotOf[SQLExpression](),
			SQLOperator:     backend.SlotOf[SQLOperator](),
			SourceConfig:    backend.SlotOf[SourceConfig](),
		},
		Features: backend.Features{
			CaseInsensitiveLike: true,
			ComputedFields:      true,
			RemoteFields:        true,
			Relay:               true,
			NodeAggregates:      true,
			DistinctOn:          true,
		},
	})
}
