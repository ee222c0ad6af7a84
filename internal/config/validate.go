package config

import (
	"fmt"
	"strings"

	"crossdb-graphql/internal/backend"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func (r *ValidationResult) addError(field, message, hint string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Hint: hint})
}

func (r *ValidationResult) addWarning(field, message, hint string) {
	r.Warnings = append(r.Warnings, ValidationWarning{Field: field, Message: message, Hint: hint})
}

// Validate checks the configuration for errors and returns validation
// results. It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	c.validateSources(result)
	c.validateLogging(result)

	if c.Auth.Webhook.IsZero() && c.Auth.WebhookTimeout.Seconds() != 0 {
		result.addWarning("auth.webhook_timeout",
			"webhook timeout is set but no webhook is configured",
			"configure auth.webhook or remove the timeout")
	}

	return result
}

func (c *Config) validateSources(result *ValidationResult) {
	if len(c.Sources) == 0 {
		result.addWarning("sources", "no data sources configured",
			"add at least one source to serve queries")
	}

	seen := make(map[string]bool)
	for i, src := range c.Sources {
		field := fmt.Sprintf("sources[%d]", i)

		name := src.Name.String()
		if seen[name] {
			result.addError(field+".name", fmt.Sprintf("duplicate source name %q", name), "")
		}
		seen[name] = true

		if _, registered := backend.Get(src.Kind); !registered {
			result.addError(field+".kind",
				fmt.Sprintf("backend %q is not registered", src.Kind), "")
			continue
		}

		engineCfg := src.EngineConfig()
		if engineCfg == nil {
			result.addError(field,
				fmt.Sprintf("no connection configuration for backend %q", src.Kind),
				fmt.Sprintf("add a %q section", src.Kind))
			continue
		}
		if src.Postgres != nil && src.MySQL != nil {
			result.addError(field, "multiple connection configurations present",
				"keep exactly one engine section per source")
			continue
		}

		// The config type determines the kind; a mismatched section is a
		// contradiction, not a preference.
		if kind, ok := backend.KindOfConfig(engineCfg); !ok || kind != src.Kind {
			result.addError(field+".kind",
				fmt.Sprintf("connection configuration is for backend %q, kind says %q", kind, src.Kind), "")
			continue
		}

		if validator, ok := engineCfg.(interface{ Validate() error }); ok {
			if err := validator.Validate(); err != nil {
				result.addError(field, err.Error(), "")
			}
		}
	}
}

func (c *Config) validateLogging(result *ValidationResult) {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		result.addError("logging.level",
			fmt.Sprintf("unknown log level %q", c.Logging.Level),
			"use one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		result.addError("logging.format",
			fmt.Sprintf("unknown log format %q", c.Logging.Format),
			"use json or text")
	}
}
