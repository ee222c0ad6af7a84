package metadata

import (
	"fmt"

	"crossdb-graphql/internal/backend"
	"crossdb-graphql/internal/primitive"
)

// Constraint identifies a table constraint by name and backend object ID.
// The OID is the identity: a constraint keeps its OID across renames, so
// two constraints are the same object exactly when their OIDs match.
type Constraint[N backend.WireSlot[N]] struct {
	Name N             `json:"name"`
	OID  primitive.OID `json:"oid"`
}

// SameObject reports whether both constraints refer to the same backend
// object, regardless of their current names.
func (c Constraint[N]) SameObject(other Constraint[N]) bool {
	return c.OID == other.OID
}

// Fingerprint returns a stable content hash of the constraint.
func (c Constraint[N]) Fingerprint() backend.Fingerprint {
	return backend.FingerprintOf(c)
}

// PrimaryKey is a table's primary key: its constraint plus the key columns
// in declared order. Column order is significant.
type PrimaryKey[N backend.WireSlot[N], C any] struct {
	Constraint Constraint[N] `json:"constraint"`
	Columns    []C           `json:"columns"`
}

// NewPrimaryKey builds a validated primary key; the column sequence must be
// non-empty.
func NewPrimaryKey[N backend.WireSlot[N], C any](constraint Constraint[N], columns []C) (PrimaryKey[N, C], error) {
	if len(columns) == 0 {
		return PrimaryKey[N, C]{}, fmt.Errorf("primary key must have at least one column")
	}
	return PrimaryKey[N, C]{Constraint: constraint, Columns: columns}, nil
}

// Fingerprint returns a stable content hash of the key, sensitive to
// column order.
func (pk PrimaryKey[N, C]) Fingerprint() backend.Fingerprint {
	return backend.FingerprintOf(pk)
}

// ForeignKey is a foreign key constraint: the referencing-to-referenced
// column mapping and the foreign table it points at.
type ForeignKey[N backend.WireSlot[N], T backend.WireSlot[T], C backend.WireSlot[C]] struct {
	Constraint    Constraint[N] `json:"constraint"`
	ForeignTable  T             `json:"foreign_table"`
	ColumnMapping map[C]C       `json:"column_mapping"`
}

// Fingerprint returns a stable content hash of the foreign key.
func (fk ForeignKey[N, T, C]) Fingerprint() backend.Fingerprint {
	return backend.FingerprintOf(fk)
}

// LocalColumns returns the referencing columns in stable slot order.
func LocalColumns[N backend.WireSlot[N], T backend.WireSlot[T], C interface {
	backend.WireSlot[C]
	backend.OrderedSlot[C]
}](fk ForeignKey[N, T, C]) []C {
	cols := make([]C, 0, len(fk.ColumnMapping))
	for col := range fk.ColumnMapping {
		cols = append(cols, col)
	}
	backend.SortSlots(cols)
	return cols
}
