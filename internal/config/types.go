// Package config loads and validates the engine configuration: the set of
// data sources with their backend-specific connection settings, the auth
// webhook, and SQL-generation options.
package config

import (
	"github.com/google/uuid"

	"crossdb-graphql/internal/backend"
	"crossdb-graphql/internal/backends/mysql"
	"crossdb-graphql/internal/backends/postgres"
	"crossdb-graphql/internal/metadata"
	"crossdb-graphql/internal/naming"
	"crossdb-graphql/internal/primitive"
	"crossdb-graphql/internal/webhook"
)

// Config holds the engine configuration.
type Config struct {
	// InstanceID identifies this engine instance in logs and telemetry.
	// Generated fresh at load time, never read from the file.
	InstanceID uuid.UUID `mapstructure:"-"`

	Sources []SourceEntry      `mapstructure:"sources"`
	Auth    AuthConfig         `mapstructure:"auth"`
	SQLGen  metadata.SQLGenCtx `mapstructure:"sql_generation"`
	Logging LoggingConfig      `mapstructure:"logging"`
	Naming  naming.Config      `mapstructure:"naming"`
}

// SourceEntry declares one data source: its name, backend kind, and the
// backend-specific connection configuration. Exactly one of the
// engine-specific sections must be present, and it must agree with Kind.
type SourceEntry struct {
	Name metadata.SourceName `mapstructure:"name"`
	Kind backend.Kind        `mapstructure:"kind"`

	Postgres *postgres.SourceConfig `mapstructure:"postgres"`
	MySQL    *mysql.SourceConfig    `mapstructure:"mysql"`
}

// EngineConfig returns whichever backend-specific config section is set.
func (s SourceEntry) EngineConfig() any {
	switch {
	case s.Postgres != nil:
		return s.Postgres
	case s.MySQL != nil:
		return s.MySQL
	default:
		return nil
	}
}

// AuthConfig holds the authentication webhook settings.
type AuthConfig struct {
	// Webhook is the auth hook URL: a literal/templated URL or an
	// environment variable indirection.
	Webhook webhook.URLConf `mapstructure:"webhook"`
	// WebhookTimeout bounds each auth hook call.
	WebhookTimeout primitive.Timeout `mapstructure:"webhook_timeout"`
}

// LoggingConfig holds logging parameters.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}
