package backend

import (
	"encoding"
	"sort"

	"crossdb-graphql/internal/naming"
)

// Slot is the capability bundle every backend representation type must
// satisfy: structural equality and map-key hashability (comparable) plus a
// stable content fingerprint. Slot types are immutable values; copying one
// must never alias mutable state.
type Slot[T any] interface {
	comparable
	Fingerprint() Fingerprint
}

// WireSlot is a Slot that crosses the wire or forms cache keys. Its text
// form doubles as a JSON object key, so it must be stable and injective.
// Implementations are expected to provide the matching UnmarshalText on
// their pointer receiver.
type WireSlot[T any] interface {
	Slot[T]
	encoding.TextMarshaler
}

// OrderedSlot is a Slot with a total order, required where collections of
// the type need deterministic output ordering.
type OrderedSlot[T any] interface {
	Slot[T]
	// Compare returns a negative value, zero, or a positive value when the
	// receiver sorts before, equal to, or after other.
	Compare(other T) int
}

// SortSlots sorts xs in place by the slot order.
func SortSlots[T OrderedSlot[T]](xs []T) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].Compare(xs[j]) < 0 })
}

// Backend is the capability contract implemented once per Kind. The type
// parameters bind the engine's native table-name, function-name,
// function-argument and scalar-type representations; the remaining slots
// are recorded in the binding's TypeMap at registration.
//
// Every operation is a pure function of its arguments; a Backend value
// carries no connection or session state.
type Backend[Tab WireSlot[Tab], Fun WireSlot[Fun], Arg Slot[Arg], Scalar WireSlot[Scalar]] interface {
	// Kind reports which engine this contract instance serves.
	Kind() Kind

	// FunctionArgScalarType maps a function-argument type to the scalar
	// type used for GraphQL typing of the argument.
	FunctionArgScalarType(arg Arg) Scalar

	// IsComparableType reports whether comparison operators (_eq, _lt, ...)
	// may be exposed for the scalar.
	IsComparableType(scalar Scalar) bool

	// IsNumType reports whether arithmetic aggregates (sum, avg, ...)
	// may be exposed for the scalar.
	IsNumType(scalar Scalar) bool

	// TableGraphQLName converts a native table name into a GraphQL-safe
	// identifier. The error is a recoverable build-time condition: the
	// schema builder skips or reports the offending table.
	TableGraphQLName(table Tab) (naming.GraphQLName, error)

	// FunctionGraphQLName converts a native function name into a
	// GraphQL-safe identifier, with the same failure semantics as
	// TableGraphQLName.
	FunctionGraphQLName(function Fun) (naming.GraphQLName, error)
}
