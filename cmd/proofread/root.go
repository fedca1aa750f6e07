package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"lexis-hq/proofread/pkg/cli"
	"lexis-hq/proofread/pkg/config"
)

var (
	// Global flags
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "proofread",
	Short: "Proofread - grammar and spelling checks over HTTP",
	Long: `Proofread reports grammar and spelling findings for English text.

The run command serves POST /v1/check with bearer authentication,
per-client rate limiting, Prometheus metrics and OpenTelemetry tracing.
The check command runs the same analysis offline over a file or stdin.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Any error exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path (optional unless set explicitly)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
}

// loadConfig loads the .env file, then the config file with environment
// overrides. The default config path may be absent.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flag("env-file").Changed {
			return nil, cli.NewConfigError("", "failed to load env file "+envFile, err)
		}
	}

	path, err := config.ResolvePath(cfgFile, cmd.Flag("config").Changed)
	if err != nil {
		return nil, cli.NewConfigError("", "failed to resolve config path", err)
	}

	cfg, err := config.LoadConfigWithEnvOverrides(path)
	if err != nil {
		return nil, cli.NewConfigError("", "failed to load config", err)
	}
	return cfg, nil
}
