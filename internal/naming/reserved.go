package naming

import "strings"

// graphqlReservedWords contains GraphQL keywords and built-in type names
// that cannot serve as generated identifiers.
var graphqlReservedWords = map[string]bool{
	// GraphQL language keywords
	"query":        true,
	"mutation":     true,
	"subscription": true,
	"type":         true,
	"schema":       true,
	"scalar":       true,
	"enum":         true,
	"input":        true,
	"interface":    true,
	"union":        true,
	"fragment":     true,
	"directive":    true,
	"extend":       true,
	"implements":   true,
	"on":           true,

	// Built-in scalar types
	"int":     true,
	"float":   true,
	"string":  true,
	"boolean": true,
	"id":      true,

	// Boolean literals
	"true":  true,
	"false": true,
	"null":  true,
}

// isReservedName checks whether a name is unusable as a generated GraphQL
// identifier.
func isReservedName(name string) bool {
	lowerName := strings.ToLower(name)
	if strings.HasPrefix(lowerName, "__") {
		return true
	}
	if graphqlReservedWords[lowerName] {
		return true
	}
	// Reserve the _aggregate suffix for generated aggregation fields.
	return strings.HasSuffix(lowerName, "_aggregate")
}
