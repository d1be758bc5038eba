package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qualhook/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "qualhook",
	Short: "Lint aggregator for coding-assistant hooks",
	Long:  `qualhook runs project linters after file edits and condenses their output into compact, grouped feedback`,
}

// main registers subcommands and persistent flags, then executes the
// root command. Command errors exit with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-tool timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "cap diagnostics per tool (0=use config)")
	rootCmd.PersistentFlags().String("trace", "", "trace output path (\"-\" for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|detail|debug)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
