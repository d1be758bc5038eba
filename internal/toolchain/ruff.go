package toolchain

import (
	"regexp"
	"strconv"
	"strings"

	"qualhook/internal/diag"
	"qualhook/internal/runner"
)

// Ruff runs `ruff check --fix`: auto-fixable issues are rewritten in
// place and only the remainder is reported.
type Ruff struct{}

func (Ruff) Name() string { return "ruff" }

func (Ruff) FixArgv(string) []string { return nil }

func (Ruff) CheckArgv(target string) []string {
	return []string{"ruff", "check", "--fix", target}
}

// path:line:col: CODE [*] message
var ruffIssueRe = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([A-Z]+\d+)(?: \[\*\])? (.+)$`)

// Found 3 errors (1 fixed, 2 remaining).
var ruffSummaryRe = regexp.MustCompile(`\((\d+) fixed, (\d+) remaining\)`)

func (t Ruff) Parse(res runner.Result, _ string) ParseResult {
	out := strings.TrimSpace(res.Output)
	if out == "" || strings.Contains(out, "All checks passed") {
		return ParseResult{}
	}

	var pr ParseResult
	for _, line := range strings.Split(out, "\n") {
		if m := ruffSummaryRe.FindStringSubmatch(line); m != nil {
			if fixed, err := strconv.Atoi(m[1]); err == nil {
				pr.Fixed = fixed
			}
			continue
		}
		m := ruffIssueRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		pr.Diags = append(pr.Diags, diag.New(
			t.Name(), diag.SevError,
			m[1], parsePos(m[2]), parsePos(m[3]),
			m[4], strings.TrimSpace(m[5]),
		))
	}

	if len(pr.Diags) == 0 && pr.Fixed == 0 && res.ExitCode != 0 {
		pr.Failure = firstLine(out)
	}
	return pr
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
