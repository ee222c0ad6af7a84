package webhook

import (
	"encoding/json"
	"fmt"
)

// InputWebhook is an unresolved, possibly templated webhook URL. It is a
// distinct type from ResolvedWebhook so the two cannot be confused.
type InputWebhook struct {
	template Template
}

// ParseInputWebhook parses a webhook URL template.
func ParseInputWebhook(raw string) (InputWebhook, error) {
	tmpl, err := ParseTemplate(raw)
	if err != nil {
		return InputWebhook{}, err
	}
	return InputWebhook{template: tmpl}, nil
}

// String returns the unresolved template text.
func (w InputWebhook) String() string { return w.template.String() }

// Template returns the parsed template.
func (w InputWebhook) Template() Template { return w.template }

// MarshalJSON encodes the webhook as its raw template string.
func (w InputWebhook) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.template.String())
}

// UnmarshalJSON decodes and parses a template string.
func (w *InputWebhook) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("expected webhook URL string: %w", err)
	}
	parsed, err := ParseInputWebhook(raw)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// ResolvedWebhook is a fully substituted webhook URL.
type ResolvedWebhook string

// ResolveWebhook substitutes the webhook's placeholders from env.
func ResolveWebhook(env Env, in InputWebhook) (ResolvedWebhook, error) {
	resolved, err := in.template.Resolve(env)
	if err != nil {
		return "", err
	}
	return ResolvedWebhook(resolved), nil
}
