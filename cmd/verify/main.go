// Package main is the entrypoint for the quotes API smoke tester.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/quotegen/quotegen/internal/config"
	"github.com/quotegen/quotegen/internal/logging"
	"github.com/quotegen/quotegen/internal/metrics"
	"github.com/quotegen/quotegen/internal/verify"
)

func main() {
	// Load configuration
	cfg, err := config.LoadVerify()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		baseURL  = flag.String("base-url", cfg.APIBaseURL, "Quotes API base URL, including /api")
		extended = flag.Bool("extended", false, "Also run data consistency checks")
		strict   = flag.Bool("strict", false, "Exit with status 1 when any check fails")
		logLevel = flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	)
	flag.Parse()

	logger := logging.New(*logLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	client := verify.NewClient(config.NormalizeBaseURL(*baseURL), verify.NewHTTPClient(cfg.Timeout))
	rec := metrics.NewInMemory()
	runner := verify.NewRunner(client, os.Stdout, logger, rec)

	checks := verify.DefaultChecks()
	if *extended {
		checks = append(checks, verify.ExtendedChecks()...)
	}

	report := runner.Run(context.Background(), checks)
	report.Print(os.Stdout)
	logger.Info("run metrics", "metrics", rec.Snapshot())

	if *strict && !report.OK() {
		os.Exit(1)
	}
}
