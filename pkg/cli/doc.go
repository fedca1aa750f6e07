/*
Package cli provides the helpers shared by the proofread commands.

Output Formatting:

Check results can be printed as text, JSON or CSV:

	formatter, err := cli.NewFormatter(cli.FormatText)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(os.Stdout, text, resp); err != nil {
		return err
	}

Text output has one finding per line with a 1-based line and column:

	3:14 spelling Spelling Did you mean to spell "speling" this way? -> spelling

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
