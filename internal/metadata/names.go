// Package metadata defines the backend-agnostic schema metadata entities:
// relationship and key records generic over a backend's column and name
// types, plus the naming and aggregate types shared by the metadata loader
// and the query compiler. All entities are immutable values, built during
// metadata load and replaced wholesale on reload.
package metadata

import (
	"fmt"
	"strings"

	"crossdb-graphql/internal/backend"
)

// RelName is a non-empty relationship identifier.
type RelName string

// RootRelName is the reserved name of the synthetic root relation.
const RootRelName RelName = "root"

// NewRelName validates that the name is non-empty.
func NewRelName(s string) (RelName, error) {
	if s == "" {
		return "", fmt.Errorf("relationship name cannot be empty")
	}
	return RelName(s), nil
}

// String returns the name as plain text.
func (r RelName) String() string { return string(r) }

// IsRoot reports whether this is the reserved root relation name.
func (r RelName) IsRoot() bool { return r == RootRelName }

// MarshalText implements encoding.TextMarshaler.
func (r RelName) MarshalText() ([]byte, error) { return []byte(r), nil }

// UnmarshalText implements encoding.TextUnmarshaler, rejecting empty names.
func (r *RelName) UnmarshalText(b []byte) error {
	parsed, err := NewRelName(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// FieldName is an externally visible field identifier.
type FieldName string

// String returns the field name as plain text.
func (f FieldName) String() string { return string(f) }

// FieldNameFromColumn derives a field name from a backend column using its
// wire text form.
func FieldNameFromColumn[C backend.WireSlot[C]](col C) (FieldName, error) {
	text, err := col.MarshalText()
	if err != nil {
		return "", fmt.Errorf("cannot derive field name from column: %w", err)
	}
	return FieldName(text), nil
}

// FieldNameFromRel derives a field name from a relationship name.
func FieldNameFromRel(rel RelName) FieldName {
	return FieldName(rel)
}

// defaultSourceText is the wire form of the default source.
const defaultSourceText = "default"

// SourceName identifies a configured data source: either the distinguished
// default source or a named one. The zero value is the default source.
type SourceName struct {
	// name is empty for the default source.
	name string
}

// DefaultSource returns the distinguished default source.
func DefaultSource() SourceName { return SourceName{} }

// NewSourceName parses a source name; the literal "default" yields the
// default source and any other non-empty string a named source.
func NewSourceName(s string) (SourceName, error) {
	if s == "" {
		return SourceName{}, fmt.Errorf("source name cannot be empty")
	}
	if s == defaultSourceText {
		return DefaultSource(), nil
	}
	return SourceName{name: s}, nil
}

// IsDefault reports whether this is the default source.
func (s SourceName) IsDefault() bool { return s.name == "" }

// String returns the wire text of the source name.
func (s SourceName) String() string {
	if s.IsDefault() {
		return defaultSourceText
	}
	return s.name
}

// Compare orders source names: the default source first, named sources by
// text. Consistent with text equality.
func (s SourceName) Compare(other SourceName) int {
	switch {
	case s.IsDefault() && other.IsDefault():
		return 0
	case s.IsDefault():
		return -1
	case other.IsDefault():
		return 1
	default:
		return strings.Compare(s.name, other.name)
	}
}

// Fingerprint implements the backend slot bundle so source names can key
// caches alongside backend types.
func (s SourceName) Fingerprint() backend.Fingerprint {
	return backend.FingerprintOf(s.String())
}

// MarshalText implements encoding.TextMarshaler.
func (s SourceName) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SourceName) UnmarshalText(b []byte) error {
	parsed, err := NewSourceName(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
