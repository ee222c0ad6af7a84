package webhook

import (
	"encoding/json"
	"fmt"
)

// URLConf describes how to obtain a URL: either a literal (possibly
// templated) webhook, or an indirection through one environment variable
// whose value is used verbatim with no template substitution.
//
// Wire form: a plain string for the webhook branch, or
// {"from_env": "VAR_NAME"} for the indirection branch.
type URLConf struct {
	webhook *InputWebhook
	fromEnv string
}

// URLFromWebhook builds the literal/templated branch.
func URLFromWebhook(w InputWebhook) URLConf {
	return URLConf{webhook: &w}
}

// URLFromEnv builds the environment-indirection branch.
func URLFromEnv(varName string) URLConf {
	return URLConf{fromEnv: varName}
}

// IsZero reports whether the conf holds neither branch, as the zero value
// does.
func (c URLConf) IsZero() bool {
	return c.webhook == nil && c.fromEnv == ""
}

// FromEnvVar returns the environment variable name and whether the conf is
// the indirection branch.
func (c URLConf) FromEnvVar() (string, bool) {
	return c.fromEnv, c.fromEnv != ""
}

// Webhook returns the webhook and whether the conf is the literal branch.
func (c URLConf) Webhook() (InputWebhook, bool) {
	if c.webhook == nil {
		return InputWebhook{}, false
	}
	return *c.webhook, true
}

// String returns the unresolved textual form for logs.
func (c URLConf) String() string {
	if c.fromEnv != "" {
		return "from_env:" + c.fromEnv
	}
	if c.webhook != nil {
		return c.webhook.String()
	}
	return ""
}

// MarshalJSON implements the documented wire form.
func (c URLConf) MarshalJSON() ([]byte, error) {
	switch {
	case c.fromEnv != "":
		return json.Marshal(map[string]string{"from_env": c.fromEnv})
	case c.webhook != nil:
		return json.Marshal(c.webhook)
	default:
		return nil, fmt.Errorf("cannot encode empty URL configuration")
	}
}

// UnmarshalJSON accepts either a webhook URL string or an object with a
// single "from_env" key.
func (c *URLConf) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		parsed, err := ParseInputWebhook(v)
		if err != nil {
			return err
		}
		*c = URLFromWebhook(parsed)
		return nil
	case map[string]any:
		name, ok := v["from_env"].(string)
		if !ok || name == "" || len(v) != 1 {
			return fmt.Errorf("expecting a URL string or an object with a single 'from_env' key")
		}
		*c = URLFromEnv(name)
		return nil
	default:
		return fmt.Errorf("expecting a URL string or an object with a single 'from_env' key")
	}
}

// ResolveURLConf resolves the configuration against env: the webhook branch
// substitutes template placeholders, the from_env branch reads the variable
// verbatim and fails with a "not set" error when it is absent.
func ResolveURLConf(env Env, c URLConf) (ResolvedWebhook, error) {
	if name, ok := c.FromEnvVar(); ok {
		value, err := Getenv(env, name)
		if err != nil {
			return "", err
		}
		return ResolvedWebhook(value), nil
	}
	if w, ok := c.Webhook(); ok {
		return ResolveWebhook(env, w)
	}
	return "", fmt.Errorf("cannot resolve empty URL configuration")
}
