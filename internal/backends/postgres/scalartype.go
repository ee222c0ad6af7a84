package postgres

import (
	"fmt"
	"strings"

	"crossdb-graphql/internal/backend"
)

// ScalarType is the catalog of Postgres scalar types the engine
// distinguishes. Unrecognized catalog types map to ScalarUnknown and are
// exposed as opaque strings.
type ScalarType int

const (
	ScalarUnknown ScalarType = iota
	ScalarSmallint
	ScalarInteger
	ScalarBigint
	ScalarNumeric
	ScalarReal
	ScalarDouble
	ScalarMoney
	ScalarBoolean
	ScalarText
	ScalarVarchar
	ScalarChar
	ScalarUUID
	ScalarJSON
	ScalarJSONB
	ScalarBytea
	ScalarDate
	ScalarTime
	ScalarTimetz
	ScalarTimestamp
	ScalarTimestamptz
	ScalarInterval
)

var scalarNames = map[ScalarType]string{
	ScalarUnknown:     "unknown",
	ScalarSmallint:    "smallint",
	ScalarInteger:     "integer",
	ScalarBigint:      "bigint",
	ScalarNumeric:     "numeric",
	ScalarReal:        "real",
	ScalarDouble:      "double precision",
	ScalarMoney:       "money",
	ScalarBoolean:     "boolean",
	ScalarText:        "text",
	ScalarVarchar:     "varchar",
	ScalarChar:        "char",
	ScalarUUID:        "uuid",
	ScalarJSON:        "json",
	ScalarJSONB:       "jsonb",
	ScalarBytea:       "bytea",
	ScalarDate:        "date",
	ScalarTime:        "time",
	ScalarTimetz:      "timetz",
	ScalarTimestamp:   "timestamp",
	ScalarTimestamptz: "timestamptz",
	ScalarInterval:    "interval",
}

// ScalarTypeOf maps a catalog type name to a ScalarType. The input is
// case-insensitive; size specifiers like (10,2) and common aliases are
// handled. Unrecognized names yield ScalarUnknown rather than an error.
func ScalarTypeOf(sqlType string) ScalarType {
	// Strip size specifiers like (10,2) or (255)
	if idx := strings.Index(sqlType, "("); idx != -1 {
		sqlType = sqlType[:idx]
	}
	switch strings.ToLower(strings.TrimSpace(sqlType)) {
	case "int2", "smallint", "smallserial":
		return ScalarSmallint
	case "int", "int4", "integer", "serial":
		return ScalarInteger
	case "int8", "bigint", "bigserial":
		return ScalarBigint
	case "numeric", "decimal":
		return ScalarNumeric
	case "float4", "real":
		return ScalarReal
	case "float8", "double precision":
		return ScalarDouble
	case "money":
		return ScalarMoney
	case "bool", "boolean":
		return ScalarBoolean
	case "text", "citext", "name":
		return ScalarText
	case "varchar", "character varying":
		return ScalarVarchar
	case "char", "character", "bpchar":
		return ScalarChar
	case "uuid":
		return ScalarUUID
	case "json":
		return ScalarJSON
	case "jsonb":
		return ScalarJSONB
	case "bytea":
		return ScalarBytea
	case "date":
		return ScalarDate
	case "time", "time without time zone":
		return ScalarTime
	case "timetz", "time with time zone":
		return ScalarTimetz
	case "timestamp", "timestamp without time zone":
		return ScalarTimestamp
	case "timestamptz", "timestamp with time zone":
		return ScalarTimestamptz
	case "interval":
		return ScalarInterval
	default:
		return ScalarUnknown
	}
}

// String returns the canonical Postgres name of the type.
func (t ScalarType) String() string {
	if name, ok := scalarNames[t]; ok {
		return name
	}
	return scalarNames[ScalarUnknown]
}

// IsNumeric reports whether arithmetic aggregates apply to the type.
func (t ScalarType) IsNumeric() bool {
	switch t {
	case ScalarSmallint, ScalarInteger, ScalarBigint,
		ScalarNumeric, ScalarReal, ScalarDouble, ScalarMoney:
		return true
	default:
		return false
	}
}

// IsComparable reports whether ordering comparisons apply to the type.
// JSON values have no meaningful total order in queries, and unknown types
// are conservatively treated as incomparable.
func (t ScalarType) IsComparable() bool {
	switch t {
	case ScalarJSON, ScalarJSONB, ScalarUnknown:
		return false
	default:
		return true
	}
}

// Fingerprint implements the backend slot bundle.
func (t ScalarType) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(t.String()) }

// Compare orders scalar types by their canonical names.
func (t ScalarType) Compare(other ScalarType) int {
	return strings.Compare(t.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (t ScalarType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler, rejecting names that
// are not in the catalog.
func (t *ScalarType) UnmarshalText(b []byte) error {
	parsed := ScalarTypeOf(string(b))
	if parsed == ScalarUnknown && strings.ToLower(string(b)) != "unknown" {
		return fmt.Errorf("unknown postgres scalar type %q", b)
	}
	*t = parsed
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

// FunctionArgType is the declared type of a SQL function argument.
type FunctionArgType struct {
	Scalar ScalarType `json:"scalar"`
	// Optional marks arguments with a declared default.
	Optional bool `json:"optional"`
}

// Fingerprint implements the backend slot bundle.
func (a FunctionArgType) Fingerprint() backend.Fingerprint { return backend.FingerprintOf(a) }
