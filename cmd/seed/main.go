// Package main is the entrypoint for the quotes database seeder.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/quotegen/quotegen/internal/config"
	"github.com/quotegen/quotegen/internal/logging"
	"github.com/quotegen/quotegen/internal/metrics"
	"github.com/quotegen/quotegen/internal/seed"
	"github.com/quotegen/quotegen/internal/store"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadSeed()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}

	var (
		databaseURL = flag.String("database-url", cfg.DatabaseURL, "Document store connection string (postgres://, redis://, memory://)")
		dbName      = flag.String("db-name", cfg.DBName, "Logical database name inside the store")
		dryRun      = flag.Bool("dry-run", false, "Seed an in-memory store instead of the configured one")
		verify      = flag.Bool("verify", false, "Check counts, references and content after seeding")
		logLevel    = flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	)
	flag.Parse()

	cfg.DatabaseURL = *databaseURL
	cfg.DBName = *dbName
	cfg.LogLevel = *logLevel
	if *dryRun {
		cfg.DatabaseURL = "memory://"
		if cfg.DBName == "" {
			cfg.DBName = "dry-run"
		}
	}

	// Structured logs go to stderr; stdout carries the progress report.
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	rec := metrics.NewInMemory()
	_, stats, err := seed.Execute(ctx, store.Open, cfg.DatabaseURL, cfg.DBName, *verify,
		seed.WithOutput(os.Stdout),
		seed.WithLogger(logger),
		seed.WithMetrics(rec),
	)
	logger.Info("run metrics", "metrics", rec.Snapshot())
	if err != nil {
		if errors.Is(err, seed.ErrIntegrity) {
			fmt.Fprintf(os.Stdout, "\nVerification failed: %v\n", err)
		}
		logger.Error("seeding failed", slog.String("error", logging.SanitizeError(err, cfg.DatabaseURL)))
		return err
	}

	if stats != nil {
		fmt.Fprintf(os.Stdout, "\nVerified %d people and %d quotes (fingerprint %s)\n",
			stats.People, stats.Quotes, stats.Fingerprint[:12])
	}

	return nil
}
