package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"qualhook/internal/hook"
	"qualhook/internal/runner"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run as an editor hook: read an edit event from stdin, lint the file",
	Long: `Reads a PostToolUse event from stdin, runs the tool chain for the
edited file, and prints a feedback envelope when issues remain.
Always exits 0 so the host flow is never blocked.`,
	Args: cobra.NoArgs,
	RunE: runHook,
}

func init() {
	hookCmd.Flags().String("event", "", "read the hook event from a file instead of stdin")
	hookCmd.Flags().Duration("timeout", 0, "per-tool timeout override (0=use config)")
}

// runHook never returns an error for file-level problems: a hook that
// fails the host on its own bugs is worse than one that says nothing.
func runHook(cmd *cobra.Command, _ []string) error {
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var in io.Reader = cmd.InOrStdin()
	eventPath, err := cmd.Flags().GetString("event")
	if err != nil {
		return fmt.Errorf("failed to get event flag: %w", err)
	}
	if eventPath != "" {
		f, err := os.Open(eventPath)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "qualhook: %v\n", err)
			return nil
		}
		defer f.Close()
		in = f
	}

	ev, err := hook.DecodeEvent(in)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "qualhook: %v\n", err)
		return nil
	}

	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return fmt.Errorf("failed to get timeout flag: %w", err)
	}

	res, err := hook.Run(cmd.Context(), runner.Exec{}, ev, hook.Options{Timeout: timeout})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "qualhook: %v\n", err)
		return nil
	}
	if res == nil || res.Message == "" {
		return nil
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		printTimings(cmd.ErrOrStderr(), res.Timings)
	}

	return hook.EncodeOutput(cmd.OutOrStdout(), ev.HookEventName, res.Message)
}
