package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"qualhook/internal/diag"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	toolColor = color.New(color.FgWhite, color.Bold)
	okColor   = color.New(color.FgGreen)
	dimColor  = color.New(color.Faint)
)

// Pretty formats reports for an interactive terminal. Each tool gets a
// header line followed by its rendered groups; passing tools collapse
// to a single "ok" line. Iterates reports in the order given.
func Pretty(w io.Writer, reports []diag.Report, opts PrettyOpts) {
	for _, r := range reports {
		header := fmt.Sprintf("%s %s", r.Tool, displayPath(r.Target, opts.PathMode))
		fmt.Fprintln(w, paint(toolColor, opts.Color, header))
		switch r.Status {
		case diag.StatusPass:
			line := "  ok"
			if r.Fixed > 0 {
				line = fmt.Sprintf("  ok (auto-fixed %d issue(s))", r.Fixed)
			}
			fmt.Fprintln(w, paint(okColor, opts.Color, line))
			continue
		case diag.StatusTimeout, diag.StatusToolError:
			fmt.Fprintln(w, paint(warnColor, opts.Color, "  "+Compact(r)))
			continue
		}
		if r.Fixed > 0 {
			fmt.Fprintln(w, paint(dimColor, opts.Color, fmt.Sprintf("  auto-fixed %d issue(s)", r.Fixed)))
		}
		for _, g := range r.Groups {
			label := severityStyle(g.Severity)
			line := fmt.Sprintf("  %s [%s] %s", g.Severity.String(), g.Rule, RenderGroup(g))
			line = clip(line, opts.Width)
			fmt.Fprintln(w, paint(label, opts.Color, line))
		}
	}
}

func severityStyle(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	}
	return infoColor
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func clip(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width-3, "...")
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeRelative:
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		wd, err := os.Getwd()
		if err != nil {
			return path
		}
		if rel, err := filepath.Rel(wd, abs); err == nil {
			return rel
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}
