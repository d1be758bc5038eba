// Package hook turns a host edit event into linter feedback.
//
// The flow is deliberately forgiving: anything that is not a lintable,
// existing file produces no output and a zero exit, so the host never
// blocks on qualhook. Tool failures surface as warning lines inside the
// feedback message, never as a hook failure.
package hook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"qualhook/internal/diag"
	"qualhook/internal/diagfmt"
	"qualhook/internal/observ"
	"qualhook/internal/project"
	"qualhook/internal/runner"
	"qualhook/internal/toolchain"
	"qualhook/internal/trace"
)

// Options tweak one hook invocation.
type Options struct {
	Timeout time.Duration // per-tool budget; 0 means use config
}

// Result is the outcome of one hook invocation.
type Result struct {
	Target  string
	Reports []diag.Report
	Message string // empty when the file is clean or out of scope
	Timings []observ.ToolTiming
}

// Run checks the file named by the event and assembles feedback.
// A nil Result with a nil error means the event was out of scope
// (no file path, unknown extension, or the file no longer exists).
func Run(ctx context.Context, r runner.Runner, ev Event, opts Options) (*Result, error) {
	target := ev.ToolInput.FilePath
	if target == "" {
		return nil, nil
	}
	chain, ok := toolchain.ChainFor(target)
	if !ok {
		return nil, nil
	}
	if info, err := os.Stat(target); err != nil || info.IsDir() {
		return nil, nil
	}

	done := trace.Span(ctx, trace.ScopeHook, "hook "+filepath.Base(target))

	cfg, err := project.DiscoverConfig(filepath.Dir(target))
	if err != nil {
		done("config error")
		return nil, err
	}
	if opts.Timeout > 0 {
		seconds := int(opts.Timeout / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		cfg.Hooks.TimeoutSeconds = seconds
	}

	tm := observ.NewTimer()
	reports, err := toolchain.RunChain(ctx, r, chain, cfg, target, tm)
	if err != nil {
		done("error")
		return nil, err
	}

	res := &Result{
		Target:  target,
		Reports: reports,
		Message: BuildMessage(target, reports),
		Timings: tm.Timings(),
	}
	if res.Message == "" {
		done("clean")
	} else {
		done("issues")
	}
	return res, nil
}

// BuildMessage renders the per-tool feedback for a checked file.
// Passing tools are omitted; if every tool passed the message is empty.
func BuildMessage(target string, reports []diag.Report) string {
	var bullets []string
	for _, rep := range reports {
		switch rep.Status {
		case diag.StatusPass:
			continue
		case diag.StatusTimeout, diag.StatusToolError:
			bullets = append(bullets, "- "+diagfmt.Compact(rep))
		default:
			var b strings.Builder
			fmt.Fprintf(&b, "- %s: %s in %s", rep.Tool, diagfmt.Summary(rep), filepath.Base(rep.Target))
			// Empty when every group is summarized away (a tool with
			// warning-count-only feedback and no errors).
			if body := diagfmt.Compact(rep); body != "" {
				for _, line := range strings.Split(body, "\n") {
					b.WriteString("\n  ")
					b.WriteString(line)
				}
			}
			bullets = append(bullets, b.String())
		}
	}
	if len(bullets) == 0 {
		return ""
	}
	return fmt.Sprintf("Code quality for %s:\n%s", filepath.Base(target), strings.Join(bullets, "\n"))
}
