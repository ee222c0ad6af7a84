package webhook

import (
	"fmt"
	"regexp"
	"strings"
)

// Template is a parsed URL template: literal segments interleaved with
// {{VAR}} placeholders. Parse failures never produce a partial Template.
type Template struct {
	raw      string
	segments []segment
}

type segment struct {
	// Exactly one of literal/variable is meaningful per segment.
	literal  string
	variable string
}

var placeholderNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ParseTemplate parses a URL template string.
func ParseTemplate(raw string) (Template, error) {
	var segments []segment
	rest := raw
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			if rest != "" {
				segments = append(segments, segment{literal: rest})
			}
			break
		}
		if open > 0 {
			segments = append(segments, segment{literal: rest[:open]})
		}
		rest = rest[open+2:]
		closing := strings.Index(rest, "}}")
		if closing < 0 {
			return Template{}, fmt.Errorf("unterminated placeholder in URL template %q", raw)
		}
		name := strings.TrimSpace(rest[:closing])
		if !placeholderNameRe.MatchString(name) {
			return Template{}, fmt.Errorf("invalid placeholder name %q in URL template %q", rest[:closing], raw)
		}
		segments = append(segments, segment{variable: name})
		rest = rest[closing+2:]
	}
	return Template{raw: raw, segments: segments}, nil
}

// String returns the original template text.
func (t Template) String() string { return t.raw }

// Variables returns the placeholder names in order of first appearance.
func (t Template) Variables() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, seg := range t.segments {
		if seg.variable == "" {
			continue
		}
		if _, ok := seen[seg.variable]; ok {
			continue
		}
		seen[seg.variable] = struct{}{}
		names = append(names, seg.variable)
	}
	return names
}

// Resolve substitutes every placeholder with its environment value. A
// placeholder with no binding fails the whole resolution, naming the
// variable.
func (t Template) Resolve(env Env) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.variable == "" {
			b.WriteString(seg.literal)
			continue
		}
		value, ok := env.Lookup(seg.variable)
		if !ok {
			return "", fmt.Errorf("environment variable %q referenced by URL template is not set", seg.variable)
		}
		b.WriteString(value)
	}
	return b.String(), nil
}
