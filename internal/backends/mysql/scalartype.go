package mysql

import (
	"fmt"
	"strings"

	"crossdb-graphql/internal/backend"
)

// ScalarType is the catalog of MySQL scalar types the engine
// distinguishes.
type ScalarType int

const (
	ScalarUnknown ScalarType = iota
	ScalarTinyint
	ScalarSmallint
	ScalarMediumint
	ScalarInt
	ScalarBigint
	ScalarDecimal
	ScalarFloat
	ScalarDouble
	ScalarBit
	ScalarBoolean
	ScalarChar
	ScalarVarchar
	ScalarText
	ScalarBlob
	ScalarEnum
	ScalarSet
	ScalarJSON
	ScalarDate
	ScalarDatetime
	ScalarTimestamp
	ScalarTime
	ScalarYear
)

var scalarNames = map[ScalarType]string{
	ScalarUnknown:   "unknown",
	ScalarTinyint:   "tinyint",
	ScalarSmallint:  "smallint",
	ScalarMediumint: "mediumint",
	ScalarInt:       "int",
	ScalarBigint:    "bigint",
	ScalarDecimal:   "decimal",
	ScalarFloat:     "float",
	ScalarDouble:    "double",
	ScalarBit:       "bit",
	ScalarBoolean:   "boolean",
	ScalarChar:      "char",
	ScalarVarchar:   "varchar",
	ScalarText:      "text",
	ScalarBlob:      "blob",
	ScalarEnum:      "enum",
	ScalarSet:       "set",
	ScalarJSON:      "json",
	ScalarDate:      "date",
	ScalarDatetime:  "datetime",
	ScalarTimestamp: "timestamp",
	ScalarTime:      "time",
	ScalarYear:      "year",
}

// ScalarTypeOf maps an INFORMATION_SCHEMA type name to a ScalarType. The
// input is case-insensitive; size specifiers like (10,2) or (255) are
// stripped before matching. Unrecognized names yield ScalarUnknown.
func ScalarTypeOf(sqlType string) ScalarType {
	// Strip size specifiers like (10,2) or (255)
	if idx := strings.Index(sqlType, "("); idx != -1 {
		sqlType = sqlType[:idx]
	}
	switch strings.ToLower(strings.TrimSpace(sqlType)) {
	case "tinyint":
		return ScalarTinyint
	case "smallint":
		return ScalarSmallint
	case "mediumint":
		return ScalarMediumint
	case "int", "integer", "serial":
		return ScalarInt
	case "bigint":
		return ScalarBigint
	case "decimal", "numeric":
		return ScalarDecimal
	case "float":
		return ScalarFloat
	case "double", "double precision":
		return ScalarDouble
	case "bit":
		return ScalarBit
	case "bool", "boolean":
		return ScalarBoolean
	case "char", "binary":
		return ScalarChar
	case "varchar", "varbinary":
		return ScalarVarchar
	case "tinytext", "text", "mediumtext", "longtext":
		return ScalarText
	case "tinyblob", "blob", "mediumblob", "longblob":
		return ScalarBlob
	case "enum":
		return ScalarEnum
	case "set":
		return ScalarSet
	case "json":
		return ScalarJSON
	case "date":
		return ScalarDate
	case "datetime":
		return ScalarDatetime
	case "timestamp":
		return ScalarTimestamp
	case "time":
		return ScalarTime
	case "year":
		return ScalarYear
	default:
		return ScalarUnknown
	}
}

// String returns the canonical MySQL name of the type.
func (t ScalarType) String() string {
	if name, ok := scalarNames[t]; ok {
		return name
	}
	return scalarNames[ScalarUnknown]
}

// IsNumeric reports whether arithmetic aggregates apply to the type.
func (t ScalarType) IsNumeric() bool {
	switch t {
	case ScalarTinyint, ScalarSmallint, ScalarMediumint, ScalarInt,
		ScalarBigint, ScalarDecimal, ScalarFloat, ScalarDouble, ScalarBit:
		return true
	default:
		return false
	}
}

// IsComparable reports whether ordering comparisons apply to the type.
func (t ScalarType) IsComparable() bool {
	switch t {
	case ScalarJSON, ScalarBlob, ScalarSet, ScalarUnknown:
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
		return fmt.Errorf("unknown mysql scalar type %q", b)
	}
	*t = parsed
	return nil
}
