// Package naming provides GraphQL identifier validation and the conversion
// of SQL schema names to GraphQL names, including sanitization, reserved
// word handling, and pluralization.
package naming

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// GraphQLName is a validated GraphQL identifier. Obtain values through
// MakeName or FromSQLName; the zero value is not a legal name.
type GraphQLName string

var nameRe = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// MakeName validates s as a GraphQL identifier.
func MakeName(s string) (GraphQLName, error) {
	if s == "" {
		return "", fmt.Errorf("GraphQL name cannot be empty")
	}
	if !nameRe.MatchString(s) {
		return "", fmt.Errorf("%q is not a valid GraphQL name", s)
	}
	if strings.HasPrefix(s, "__") {
		return "", fmt.Errorf("%q is reserved for GraphQL introspection", s)
	}
	return GraphQLName(s), nil
}

// String returns the name as plain text.
func (n GraphQLName) String() string { return string(n) }

// MarshalText implements encoding.TextMarshaler.
func (n GraphQLName) MarshalText() ([]byte, error) { return []byte(n), nil }

// UnmarshalText implements encoding.TextUnmarshaler with validation.
func (n *GraphQLName) UnmarshalText(b []byte) error {
	parsed, err := MakeName(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// FromSQLName converts a SQL object name into a GraphQL identifier.
// Characters illegal in GraphQL names are replaced with underscores and a
// leading digit is prefixed. It fails when nothing usable remains after
// sanitization or when the result collides with a reserved word; callers
// treat that as a recoverable build condition and skip the object.
func FromSQLName(sqlName string) (GraphQLName, error) {
	sanitized := sanitize(sqlName)
	if sanitized == "" {
		return "", fmt.Errorf("SQL name %q has no GraphQL-safe characters", sqlName)
	}
	if isReservedName(sanitized) {
		return "", fmt.Errorf("SQL name %q maps to reserved GraphQL name %q", sqlName, sanitized)
	}
	return GraphQLName(sanitized), nil
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return ""
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// Config holds naming customization options.
type Config struct {
	// PluralOverrides maps singular -> custom plural
	// Example: {"person": "people", "status": "statuses"}
	PluralOverrides map[string]string `mapstructure:"plural_overrides"`

	// SingularOverrides maps plural -> custom singular
	// Example: {"people": "person", "data": "datum"}
	SingularOverrides map[string]string `mapstructure:"singular_overrides"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PluralOverrides:   make(map[string]string),
		SingularOverrides: make(map[string]string),
	}
}

// Namer derives relationship and collection names from table names. It
// handles pluralization overrides and warns when a derived name had to be
// adjusted to stay GraphQL-safe.
type Namer struct {
	config Config
	logger *slog.Logger
}

// New creates a Namer with the given configuration.
func New(cfg Config, logger *slog.Logger) *Namer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Namer{config: cfg, logger: logger}
}

// Default returns a Namer with default configuration.
func Default() *Namer {
	return New(DefaultConfig(), nil)
}

// ObjectRelationshipName suggests a name for a to-one relationship against
// remoteTable. Example: "authors" -> "author".
func (n *Namer) ObjectRelationshipName(remoteTable string) (GraphQLName, error) {
	return n.safeName(n.Singularize(toCamelCase(remoteTable)))
}

// ArrayRelationshipName suggests a name for a to-many relationship against
// remoteTable. Example: "article" -> "articles".
func (n *Namer) ArrayRelationshipName(remoteTable string) (GraphQLName, error) {
	return n.safeName(n.Pluralize(toCamelCase(remoteTable)))
}

func (n *Namer) safeName(candidate string) (GraphQLName, error) {
	if isReservedName(candidate) {
		renamed := candidate + "_"
		n.logger.Warn("GraphQL name conflicts with reserved word, auto-suffixed",
			slog.String("original", candidate),
			slog.String("renamed", renamed),
		)
		candidate = renamed
	}
	return MakeName(candidate)
}

// toCamelCase converts snake_case to camelCase.
func toCamelCase(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) > 0 {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
