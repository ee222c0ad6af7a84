package metadata

import (
	"encoding/json"
	"fmt"

	"crossdb-graphql/internal/backend"
)

// RelType distinguishes to-one from to-many relationships.
type RelType int

const (
	// ObjRel is a to-one (object) relationship.
	ObjRel RelType = iota
	// ArrRel is a to-many (array) relationship.
	ArrRel
)

// String returns the wire text of the relationship type.
func (t RelType) String() string {
	if t == ArrRel {
		return "array"
	}
	return "object"
}

// MarshalText implements encoding.TextMarshaler.
func (t RelType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RelType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "object":
		*t = ObjRel
	case "array":
		*t = ArrRel
	default:
		return fmt.Errorf("expecting either 'object' or 'array' for rel_type, got %q", b)
	}
	return nil
}

// RelInfo describes a declared relationship between two tables of one
// backend: the join predicate as a local-to-remote column mapping, the
// remote table, and whether the relationship was declared manually rather
// than inferred from a foreign key.
//
// The column type C must round-trip through its text form (the mapping is
// encoded as a JSON object keyed by column text); the table type T encodes
// through its own JSON form.
type RelInfo[C backend.WireSlot[C], T backend.WireSlot[T]] struct {
	Name        RelName `json:"name"`
	Type        RelType `json:"type"`
	Mapping     map[C]C `json:"mapping"`
	RemoteTable T       `json:"remote_table"`
	IsManual    bool    `json:"is_manual"`
	// IsNullable records whether the object relationship may be absent.
	// For array relationships the flag carries no meaning but is stored
	// for uniformity.
	IsNullable bool `json:"is_nullable"`
}

// NewRelInfo builds a validated RelInfo. The mapping must be non-empty: a
// relationship with no join columns is meaningless, so the invariant is
// enforced at construction rather than left to the metadata loader.
func NewRelInfo[C backend.WireSlot[C], T backend.WireSlot[T]](
	name RelName,
	relType RelType,
	mapping map[C]C,
	remoteTable T,
	isManual bool,
	isNullable bool,
) (RelInfo[C, T], error) {
	r := RelInfo[C, T]{
		Name:        name,
		Type:        relType,
		Mapping:     mapping,
		RemoteTable: remoteTable,
		IsManual:    isManual,
		IsNullable:  isNullable,
	}
	if err := r.Validate(); err != nil {
		return RelInfo[C, T]{}, err
	}
	return r, nil
}

// Validate checks the construction invariants. Used both by NewRelInfo and
// after decoding from the wire.
func (r RelInfo[C, T]) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("relationship name cannot be empty")
	}
	if len(r.Mapping) == 0 {
		return fmt.Errorf("relationship %q: column mapping cannot be empty", r.Name)
	}
	return nil
}

// UnmarshalJSON decodes the documented wire form and validates it, so a
// decoded RelInfo holds the same invariants as a constructed one.
func (r *RelInfo[C, T]) UnmarshalJSON(b []byte) error {
	var decoded struct {
		Name        RelName `json:"name"`
		Type        RelType `json:"type"`
		Mapping     map[C]C `json:"mapping"`
		RemoteTable T       `json:"remote_table"`
		IsManual    bool    `json:"is_manual"`
		IsNullable  bool    `json:"is_nullable"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	out := RelInfo[C, T]{
		Name:        decoded.Name,
		Type:        decoded.Type,
		Mapping:     decoded.Mapping,
		RemoteTable: decoded.RemoteTable,
		IsManual:    decoded.IsManual,
		IsNullable:  decoded.IsNullable,
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*r = out
	return nil
}

// Fingerprint returns a stable content hash of the relationship.
// encoding/json sorts the mapping keys, so the hash is deterministic.
func (r RelInfo[C, T]) Fingerprint() backend.Fingerprint {
	return backend.FingerprintOf(r)
}
