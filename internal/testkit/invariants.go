package testkit

import (
	"fmt"
	"strings"

	"qualhook/internal/diag"
	"qualhook/internal/diagfmt"
)

// CheckReportInvariants runs a minimal set of report invariants:
// 1) a passing report has no groups and renders to nothing
// 2) a failing report has at least one group
// 3) every group carries the report's tool, a message, and lines
// 4) degraded reports (timeout, tool failure) carry a detail and no groups
func CheckReportInvariants(r diag.Report) error {
	switch r.Status {
	case diag.StatusPass:
		if len(r.Groups) != 0 {
			return fmt.Errorf("passing report carries %d groups", len(r.Groups))
		}
		if r.Fixed == 0 && diagfmt.Compact(r) != "" {
			return fmt.Errorf("passing report renders non-empty output: %q", diagfmt.Compact(r))
		}
	case diag.StatusFail:
		if len(r.Groups) == 0 {
			return fmt.Errorf("failing report has no groups")
		}
	case diag.StatusTimeout, diag.StatusToolError:
		if r.Detail == "" {
			return fmt.Errorf("degraded report (%s) has no detail", r.Status)
		}
		if len(r.Groups) != 0 {
			return fmt.Errorf("degraded report (%s) carries %d groups", r.Status, len(r.Groups))
		}
	default:
		return fmt.Errorf("unknown report status %d", r.Status)
	}

	for i, g := range r.Groups {
		if g.Tool != r.Tool {
			return fmt.Errorf("group %d tool mismatch: got=%q want=%q", i, g.Tool, r.Tool)
		}
		if strings.TrimSpace(g.Message) == "" {
			return fmt.Errorf("group %d has an empty message", i)
		}
		if g.Message != diag.NormalizeMessage(g.Message) {
			return fmt.Errorf("group %d message is not normalized: %q", i, g.Message)
		}
		if len(g.Lines) == 0 {
			return fmt.Errorf("group %d has no lines", i)
		}
	}
	return nil
}

// CheckGrouping verifies that groups exactly partition the diagnostics
// they were built from: every diagnostic lands in exactly one group.
func CheckGrouping(diags []diag.Diagnostic, groups []diag.Group) error {
	want := len(diags)
	got := 0
	for _, g := range groups {
		got += len(g.Lines)
	}
	if got != want {
		return fmt.Errorf("groups cover %d diagnostics, want %d", got, want)
	}
	return nil
}
