package diagfmt

import (
	"fmt"
	"strings"

	"qualhook/internal/diag"
)

// RenderGroup renders one diagnostic group in its single-line form.
// Multi-member groups collapse into a count plus the ordered line list;
// a group of one keeps the plain single-line shape.
func RenderGroup(g diag.Group) string {
	if g.Count() > 1 {
		lines := make([]string, len(g.Lines))
		for i, l := range g.Lines {
			lines[i] = fmt.Sprintf("%d", l)
		}
		return fmt.Sprintf("%d× at lines %s: %s", g.Count(), strings.Join(lines, ", "), g.Message)
	}
	return fmt.Sprintf("line %d: %s", g.Lines[0], g.Message)
}

// Compact renders a report as the terse text surfaced to the host:
// one line per group, the auto-fixed count reported separately, and
// nothing at all for a passing report. Timeout and invocation failures
// degrade to a single warning line. Reports with SummarizeWarnings set
// render error groups only; their warnings stay in the Summary count.
func Compact(r diag.Report) string {
	switch r.Status {
	case diag.StatusTimeout:
		detail := r.Detail
		if detail == "" {
			detail = "tool timed out"
		}
		return fmt.Sprintf("%s: %s", r.Tool, detail)
	case diag.StatusToolError:
		detail := r.Detail
		if detail == "" {
			detail = "tool invocation failed"
		}
		return fmt.Sprintf("%s: %s", r.Tool, detail)
	}

	var b strings.Builder
	if r.Fixed > 0 {
		fmt.Fprintf(&b, "auto-fixed %d issue(s)\n", r.Fixed)
	}
	for _, g := range r.Groups {
		if r.SummarizeWarnings && g.Severity < diag.SevError {
			continue
		}
		b.WriteString(RenderGroup(g))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Summary renders the per-tool headline, e.g. "2 error(s), 1 warning(s)".
func Summary(r diag.Report) string {
	errs, warns := r.ErrorCount(), r.WarningCount()
	switch {
	case errs > 0 && warns > 0:
		return fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	case errs > 0:
		return fmt.Sprintf("%d error(s)", errs)
	case warns > 0:
		return fmt.Sprintf("%d warning(s)", warns)
	}
	total := 0
	for _, g := range r.Groups {
		total += g.Count()
	}
	if total > 0 {
		return fmt.Sprintf("%d issue(s)", total)
	}
	return ""
}
