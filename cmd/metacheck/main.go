// Command metacheck loads and validates an engine configuration file: it
// checks every data source against its registered backend, resolves the
// auth webhook against the current environment, and prints a summary.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"crossdb-graphql/internal/backend"
	_ "crossdb-graphql/internal/backends/mysql"
	_ "crossdb-graphql/internal/backends/postgres"
	"crossdb-graphql/internal/config"
	"crossdb-graphql/internal/logging"
	"crossdb-graphql/internal/webhook"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := run(); err != nil {
		slog.Error("metacheck error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	pflag.Bool("version", false, "Print version and exit")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if showVersion, _ := pflag.CommandLine.GetBool("version"); showVersion {
		fmt.Printf("metacheck %s (%s)\n", Version, Commit)
		return nil
	}

	logger := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	result := cfg.Validate()
	for _, warn := range result.Warnings {
		logger.Warn("configuration warning",
			slog.String("field", warn.Field),
			slog.String("message", warn.Message),
			slog.String("hint", warn.Hint),
		)
	}
	if result.HasErrors() {
		for _, verr := range result.Errors {
			logger.Error("configuration error",
				slog.String("field", verr.Field),
				slog.String("message", verr.Message),
				slog.String("hint", verr.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	logger.Info("configuration valid",
		slog.String("instance_id", cfg.InstanceID.String()),
		slog.Int("sources", len(cfg.Sources)),
	)

	for _, src := range cfg.Sources {
		binding, _ := backend.Get(src.Kind)
		logger.Info("source",
			slog.String("name", src.Name.String()),
			slog.String("backend", src.Kind.String()),
			slog.Bool("case_insensitive_like", binding.Features.CaseInsensitiveLike),
			slog.Bool("relay", binding.Features.Relay),
		)
	}

	if !cfg.Auth.Webhook.IsZero() {
		env := webhook.OSEnv()
		resolved, err := webhook.ResolveURLConf(env, cfg.Auth.Webhook)
		if err != nil {
			return fmt.Errorf("auth webhook cannot be resolved: %w", err)
		}
		logger.Info("auth webhook resolved",
			slog.String("url", string(resolved)),
			slog.Int("timeout_seconds", cfg.Auth.WebhookTimeout.Seconds()),
		)
	}

	return nil
}
