package backend

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeMap records the concrete Go type a backend binds to each contract
// slot. Every field must be set: Complete rejects partial bindings, so a
// registered backend is never half-implemented.
type TypeMap struct {
	Identifier      reflect.Type
	Alias           reflect.Type
	TableName       reflect.Type
	FunctionName    reflect.Type
	FunctionArgType reflect.Type
	ConstraintName  reflect.Type
	BasicOrderType  reflect.Type
	NullsOrderType  reflect.Type
	CountType       reflect.Type
	Column          reflect.Type
	ScalarValue     reflect.Type
	ScalarType      reflect.Type
	SQLExpression   reflect.Type
	SQLOperator     reflect.Type

	// SourceConfig is the backend's connection/config object. The relation
	// between config type and kind is one-to-one: the registry rejects a
	// config type claimed by two kinds, so knowing the config type
	// determines the backend.
	SourceConfig reflect.Type
}

// SlotOf returns the reflect.Type for T, for building TypeMaps without
// placeholder values.
func SlotOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Complete returns an error naming every unbound slot, or nil when the map
// is fully populated.
func (m TypeMap) Complete() error {
	var missing []string
	v := reflect.ValueOf(m)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if v.Field(i).IsNil() {
			missing = append(missing, t.Field(i).Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unbound contract slots: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Features toggles optional IR constructs per backend. Generic schema code
// consults these instead of branching on Kind, so a new backend states its
// capabilities in one place.
type Features struct {
	// CaseInsensitiveLike enables the _ilike/_nilike operator family.
	CaseInsensitiveLike bool
	// ComputedFields enables fields backed by SQL functions.
	ComputedFields bool
	// RemoteFields enables relationships that target other sources.
	RemoteFields bool
	// Relay enables Relay global-ID and connection support.
	Relay bool
	// NodeAggregates enables aggregate selections on relationship nodes.
	NodeAggregates bool
	// DistinctOn enables distinct-on query arguments.
	DistinctOn bool
}
