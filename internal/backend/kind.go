// Package backend defines the capability contract every supported database
// engine binds: the closed set of engine kinds, the representation slots a
// backend must supply concrete types for, and the registry that holds one
// binding per kind. Generic code elsewhere is written once against this
// contract and instantiated per engine.
package backend

import "fmt"

// Kind identifies a supported database engine. The set is closed: generic
// code switches exhaustively over it, so adding an engine means adding a
// constant here and registering a new binding, never runtime plugins.
type Kind int

const (
	// Postgres is the reference relational backend.
	Postgres Kind = iota
	// MySQL covers MySQL-compatible engines.
	MySQL
)

// AllKinds lists every declared kind in declaration order.
// Registration completeness tests iterate this.
func AllKinds() []Kind {
	return []Kind{Postgres, MySQL}
}

// String returns the canonical wire text for the kind.
func (k Kind) String() string {
	switch k {
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind converts wire text to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "postgres":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	default:
		return 0, fmt.Errorf("unknown backend kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
