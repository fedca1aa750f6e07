package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lexis-hq/proofread/pkg/cli"
	"lexis-hq/proofread/pkg/config"
	"lexis-hq/proofread/pkg/limits/ratelimit"
	"lexis-hq/proofread/pkg/server"
	"lexis-hq/proofread/pkg/telemetry/health"
	"lexis-hq/proofread/pkg/telemetry/logging"
	"lexis-hq/proofread/pkg/telemetry/metrics"
	"lexis-hq/proofread/pkg/telemetry/tracing"
)

var runFlags struct {
	host     string
	port     int
	logLevel string
	dryRun   bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the proofread server",
	Long: `Start the proofread server with the specified configuration.

The dictionary is loaded before the listener opens. SIGINT or SIGTERM
stops accepting connections and drains in-flight requests for up to
server.shutdown_timeout.

Examples:
  # Start with defaults, config.yaml if present, and the environment
  proofread run

  # Start with a custom config
  proofread run --config /etc/proofread/config.yaml

  # Override the listen port
  proofread run --port 9090

  # Validate config without starting the server
  proofread run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.host, "host", "", "override listen host")
	runCmd.Flags().IntVar(&runFlags.port, "port", 0, "override listen port")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flag("host").Changed {
		cfg.Server.Host = runFlags.host
	}
	if cmd.Flag("port").Changed {
		cfg.Server.Port = runFlags.port
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return cli.NewConfigError("", "invalid flag override", err)
	}

	logCfg := logging.FromConfig(&cfg.Telemetry.Logging, cfg.Auth.Secret)
	logCfg.Writer = cmd.ErrOrStderr()
	logger, err := logging.New(logCfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", "failed to create logger", err)
	}
	slog.SetDefault(logger)

	if runFlags.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration valid")
		return nil
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	tracer, err := tracing.New(&cfg.Telemetry.Tracing, tracing.WithVersion(Version))
	if err != nil {
		return cli.NewCommandError("run", fmt.Errorf("failed to initialize tracing: %w", err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()

	service, dict, err := newService(cfg, logger)
	if err != nil {
		return cli.NewCommandError("run", err)
	}

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)

	var limiter *ratelimit.ClientLimiter
	if cfg.RateLimit.Enabled {
		limiter, err = ratelimit.NewClientLimiter(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			MaxClients:        cfg.RateLimit.MaxClients,
			IdleTTL:           cfg.RateLimit.IdleTTL,
			SweepSchedule:     cfg.RateLimit.SweepSchedule,
		})
		if err != nil {
			return cli.NewConfigError("rate_limit", "failed to create rate limiter", err)
		}

		sweeper := ratelimit.NewSweeper(limiter, collector.SetTrackedClients)
		if err := sweeper.Start(ctx); err != nil {
			return cli.NewConfigError("rate_limit.sweep_schedule", "failed to start sweeper", err)
		}
		defer sweeper.Stop()
	}

	checker := health.New(0)
	checker.RegisterCheck("dictionary", func(context.Context) error {
		if dict.Len() == 0 {
			return errors.New("dictionary is empty")
		}
		return nil
	})

	handler := server.NewRouter(server.Deps{
		Config:  cfg,
		Service: service,
		Metrics: collector,
		Health:  checker,
		Logger:  logger,
		Limiter: limiter,
		Tracer:  tracer.Provider(),
	})

	srv := server.New(&cfg.Server, handler, checker)
	if err := srv.Listen(); err != nil {
		logger.Error("failed to bind", "error", err)
		return cli.NewCommandError("run", err)
	}

	logger.Info("server listening",
		"address", srv.Addr().String(),
		"version", Version,
		"auth", cfg.Auth.Secret != "",
		"rate_limit", cfg.RateLimit.Enabled,
		"tracing", tracer.Enabled(),
	)

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	return nil
}
