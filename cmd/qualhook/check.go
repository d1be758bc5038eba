package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"qualhook/internal/diag"
	"qualhook/internal/diagfmt"
	"qualhook/internal/observ"
	"qualhook/internal/project"
	"qualhook/internal/runner"
	"qualhook/internal/toolchain"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file>...",
	Short: "Run the tool chains for one or more files and report issues",
	Long:  `Run every applicable linter for the given files and print the aggregated, grouped diagnostics`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings in output and exit status")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	checkCmd.Flags().Bool("include-passing", false, "include clean tool runs in json output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or short)", format)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	noWarnings, _ := cmd.Flags().GetBool("no-warnings")
	warningsAsErrors, _ := cmd.Flags().GetBool("warnings-as-errors")
	fullPath, _ := cmd.Flags().GetBool("fullpath")
	includePassing, _ := cmd.Flags().GetBool("include-passing")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	maxDiags, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	tm := observ.NewTimer()

	var reports []diag.Report
	if shouldUseTUI(mode) && format == "pretty" {
		reports, err = runChecksWithUI(cmd.Context(), args, maxDiags, tm)
	} else {
		reports, err = runChecks(cmd.Context(), cmd, args, maxDiags, tm, quiet)
	}
	if err != nil {
		return err
	}

	if noWarnings {
		reports = dropWarnings(reports)
	}

	switch format {
	case "json":
		opts := diagfmt.JSONOpts{IncludePassing: includePassing, Indent: true}
		if err := diagfmt.JSON(cmd.OutOrStdout(), reports, opts); err != nil {
			return fmt.Errorf("failed to encode reports: %w", err)
		}
	case "short":
		fmt.Fprint(cmd.OutOrStdout(), diagfmt.Short(reports))
	default:
		opts := diagfmt.PrettyOpts{
			Color:    colorEnabled(cmd),
			PathMode: diagfmt.PathModeRelative,
		}
		if fullPath {
			opts.PathMode = diagfmt.PathModeAbsolute
		}
		diagfmt.Pretty(cmd.OutOrStdout(), reports, opts)
	}

	if timings {
		printTimings(cmd.ErrOrStderr(), tm.Timings())
	}

	errors := 0
	warnings := 0
	degraded := 0
	for _, r := range reports {
		switch r.Status {
		case diag.StatusTimeout, diag.StatusToolError:
			degraded++
		default:
			errors += r.ErrorCount()
			warnings += r.WarningCount()
		}
	}
	if warningsAsErrors {
		errors += warnings
	}
	if errors > 0 {
		return failSilently(cmd)
	}
	if degraded > 0 && !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d tool run(s) did not complete\n", degraded)
	}
	return nil
}

func runChecks(ctx context.Context, cmd *cobra.Command, files []string, maxDiags int, tm *observ.Timer, quiet bool) ([]diag.Report, error) {
	var all []diag.Report
	for _, file := range files {
		reports, err := checkFile(ctx, runner.Exec{}, file, maxDiags, tm)
		if err != nil {
			return nil, err
		}
		if reports == nil && !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: no tool chain for this file\n", file)
		}
		all = append(all, reports...)
	}
	return all, nil
}

// checkFile runs the applicable chain for one file. A nil report slice
// with a nil error means the file is out of scope (unknown extension or
// no project root).
func checkFile(ctx context.Context, r runner.Runner, path string, maxDiags int, tm *observ.Timer) ([]diag.Report, error) {
	chain, ok := toolchain.ChainFor(path)
	if !ok {
		return nil, nil
	}
	if info, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot check %s: %w", path, err)
	} else if info.IsDir() {
		return nil, fmt.Errorf("cannot check %s: is a directory", path)
	}

	cfg, err := project.DiscoverConfig(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	if maxDiags > 0 {
		cfg.Hooks.MaxDiagnostics = maxDiags
	}
	return toolchain.RunChain(ctx, r, chain, cfg, path, tm)
}

// failSilently suppresses cobra's usage and error output for failing
// exits whose diagnostics were already printed.
func failSilently(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("") // Silent error - diagnostics already printed
}

func dropWarnings(reports []diag.Report) []diag.Report {
	out := make([]diag.Report, 0, len(reports))
	for _, r := range reports {
		if r.Status == diag.StatusFail {
			kept := r.Groups[:0:0]
			for _, g := range r.Groups {
				if g.Severity != diag.SevWarning {
					kept = append(kept, g)
				}
			}
			r.Groups = kept
			if len(kept) == 0 {
				r.Status = diag.StatusPass
			}
		}
		out = append(out, r)
	}
	return out
}

func colorEnabled(cmd *cobra.Command) bool {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch strings.ToLower(value) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
