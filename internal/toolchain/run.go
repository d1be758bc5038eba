package toolchain

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"qualhook/internal/diag"
	"qualhook/internal/observ"
	"qualhook/internal/project"
	"qualhook/internal/runner"
	"qualhook/internal/trace"
)

// RunChain executes every enabled tool of a chain against the target
// file, sequentially, one bounded subprocess at a time, and returns one
// Report per tool in chain order.
//
// Skipped chains (no resolvable root, e.g. no node_modules anywhere
// above a .ts file) return (nil, nil): the host flow must not be
// interrupted by files that live outside a project.
func RunChain(ctx context.Context, r runner.Runner, chain *Chain, cfg project.Config, target string, tm *observ.Timer) ([]diag.Report, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target path: %w", err)
	}

	root, ok, err := chain.ResolveRoot(filepath.Dir(absTarget))
	if err != nil {
		return nil, err
	}
	if !ok {
		trace.Point(ctx, trace.ScopeTool, "chain:"+chain.Name, "skipped, no project root")
		return nil, nil
	}

	chainCfg := chain.Config(cfg)
	timeout := cfg.Timeout()

	toolTarget := absTarget
	if chain.RelativeTarget {
		if rel, relErr := filepath.Rel(root, absTarget); relErr == nil {
			toolTarget = rel
		}
	}

	var reports []diag.Report
	for _, tool := range chain.Tools {
		name := tool.Name()
		if chainCfg.Disabled(name) {
			trace.Point(ctx, trace.ScopeTool, "tool:"+name, "disabled by config")
			continue
		}

		endSpan := trace.Span(ctx, trace.ScopeTool, "tool:"+name)
		if tm != nil {
			tm.Begin(name)
		}

		report := runTool(ctx, r, tool, chainCfg.Launcher, root, toolTarget, absTarget, timeout, cfg.Hooks.MaxDiagnostics)

		if tm != nil {
			tm.End(name, report.Status.String())
		}
		endSpan(report.Status.String())
		reports = append(reports, report)
	}
	return reports, nil
}

func runTool(ctx context.Context, r runner.Runner, tool Tool, launcher []string, root, toolTarget, absTarget string, timeout time.Duration, maxDiags int) diag.Report {
	name := tool.Name()

	if fix := tool.FixArgv(toolTarget); fix != nil {
		// Auto-fix pass; its own output is irrelevant, the check pass
		// reports whatever could not be fixed.
		r.Run(ctx, root, withLauncher(launcher, fix), timeout)
	}

	res := r.Run(ctx, root, withLauncher(launcher, tool.CheckArgv(toolTarget)), timeout)
	switch {
	case res.TimedOut:
		// Partial output is discarded: truncated diagnostics would be
		// worse than none.
		return diag.TimeoutReport(name, absTarget, fmt.Sprintf("tool timed out after %s", timeout))
	case res.StartErr != nil:
		return diag.ToolErrorReport(name, absTarget, fmt.Sprintf("invocation failed: %v", res.StartErr))
	}

	endParse := trace.Span(ctx, trace.ScopeParse, "parse:"+name)
	pr := tool.Parse(res, toolTarget)
	endParse("")

	if pr.Failure != "" {
		return diag.ToolErrorReport(name, absTarget, pr.Failure)
	}

	bag := diag.NewBag(maxDiags)
	for _, d := range pr.Diags {
		if !filepath.IsAbs(d.Path) {
			d.Path = filepath.Join(root, d.Path)
		}
		bag.Add(d)
	}
	bag.Dedup()
	// Sort so group order does not depend on tool output order.
	bag.Sort()

	rep := diag.Aggregate(name, absTarget, bag.Items(), pr.Fixed)
	if ws, ok := tool.(warningSummarizer); ok && ws.SummarizeWarnings() {
		rep.SummarizeWarnings = true
	}
	return rep
}

func withLauncher(launcher, argv []string) []string {
	if len(launcher) == 0 {
		return argv
	}
	out := make([]string, 0, len(launcher)+len(argv))
	out = append(out, launcher...)
	return append(out, argv...)
}
