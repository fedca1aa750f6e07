package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lexis-hq/proofread/pkg/check"
	"lexis-hq/proofread/pkg/cli"
	"lexis-hq/proofread/pkg/telemetry/logging"
)

var checkFlags struct {
	format     string
	noSpelling bool
	noGrammar  bool
	failOnHits bool
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a file or stdin offline",
	Long: `Run the grammar and spelling check over a file, or stdin when no file
is given, and print the findings.

Examples:
  # Check a file
  proofread check notes.txt

  # Check stdin and print the HTTP response body
  echo "This is an test." | proofread check --format json

  # Fail a CI step when anything is found
  proofread check --fail-on-findings README.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkText,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.format, "format", "f", "text", "output format: text, json, csv")
	checkCmd.Flags().BoolVar(&checkFlags.noSpelling, "no-spelling", false, "skip spelling findings")
	checkCmd.Flags().BoolVar(&checkFlags.noGrammar, "no-grammar", false, "skip grammar findings")
	checkCmd.Flags().BoolVar(&checkFlags.failOnHits, "fail-on-findings", false, "exit with status 1 when there are findings")
}

func checkText(cmd *cobra.Command, args []string) error {
	formatter, err := cli.NewFormatter(cli.OutputFormat(checkFlags.format))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logCfg := logging.FromConfig(&cfg.Telemetry.Logging, cfg.Auth.Secret)
	logCfg.Level = "warn"
	logCfg.Writer = cmd.ErrOrStderr()
	logger, err := logging.New(logCfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", "failed to create logger", err)
	}

	name := "stdin"
	input := cmd.InOrStdin()
	if len(args) == 1 {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return cli.NewCommandError("check", err)
		}
		defer f.Close()
		input = f
	}

	data, err := io.ReadAll(io.LimitReader(input, check.MaxTextBytes+1))
	if err != nil {
		return cli.NewCommandError("check", fmt.Errorf("failed to read %s: %w", name, err))
	}

	service, _, err := newService(cfg, logger)
	if err != nil {
		return cli.NewCommandError("check", err)
	}

	spelling, grammar := !checkFlags.noSpelling, !checkFlags.noGrammar
	req := &check.Request{
		Text:     string(data),
		Language: check.DefaultLanguage,
		Options:  &check.Options{Spelling: &spelling, Grammar: &grammar},
	}

	resp, err := service.Check(cmd.Context(), req)
	if err != nil {
		return cli.NewCommandError("check", fmt.Errorf("%s: %w", name, err))
	}

	if tf, ok := formatter.(*cli.TextFormatter); ok && len(args) == 1 {
		tf.Name = name
	}
	if err := formatter.FormatTo(cmd.OutOrStdout(), req.Text, resp); err != nil {
		return cli.NewCommandError("check", err)
	}

	if checkFlags.failOnHits && len(resp.Matches) > 0 {
		return cli.NewCommandError("check", fmt.Errorf("%s: %d findings", name, len(resp.Matches)))
	}
	return nil
}
