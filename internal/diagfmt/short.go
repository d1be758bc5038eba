package diagfmt

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"qualhook/internal/diag"
)

type shortLine struct {
	Severity string
	Rule     string
	Path     string
	Line     uint32
	Message  string
}

// Short renders reports into a stable, single-line-per-diagnostic
// representation suitable for golden files: severity, tool/rule,
// position, message. Groups are expanded back to their member lines,
// sorted deterministically, and returned as a single string (empty
// when nothing remains).
func Short(reports []diag.Report) string {
	var rendered []shortLine
	for _, r := range reports {
		switch r.Status {
		case diag.StatusTimeout, diag.StatusToolError:
			rendered = append(rendered, shortLine{
				Severity: "warning",
				Rule:     r.Tool,
				Path:     normalizePath(r.Target),
				Message:  Compact(r),
			})
			continue
		}
		for _, g := range r.Groups {
			for _, line := range g.Lines {
				rendered = append(rendered, shortLine{
					Severity: strings.ToLower(g.Severity.String()),
					Rule:     r.Tool + "/" + g.Rule,
					Path:     normalizePath(r.Target),
					Line:     line,
					Message:  sanitizeMessage(g.Message),
				})
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Rule != dj.Rule {
			return di.Rule < dj.Rule
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d %s", d.Severity, d.Rule, d.Path, d.Line, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
