package main

import (
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

// completionScripts maps a shell name to the generator for its script.
var completionScripts = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion SHELL",
	Short: "Print a shell completion script",
	Long: `Print a completion script for SHELL to stdout.

Source it from your shell profile, for example:

  source <(proofread completion bash)
  proofread completion fish | source`,
	ValidArgs: slices.Sorted(maps.Keys(completionScripts)),
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return completionScripts[args[0]](cmd.Root(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
