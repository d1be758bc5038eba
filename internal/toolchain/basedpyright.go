package toolchain

import (
	"regexp"
	"strings"

	"qualhook/internal/diag"
	"qualhook/internal/runner"
)

// Basedpyright runs the type checker over the target file. Errors are
// surfaced in full; warnings ride along at warning severity and the
// renderer decides how much of them to show.
type Basedpyright struct{}

func (Basedpyright) Name() string { return "basedpyright" }

func (Basedpyright) FixArgv(string) []string { return nil }

// SummarizeWarnings keeps basedpyright's advisory output to a count;
// only its type errors get per-line feedback.
func (Basedpyright) SummarizeWarnings() bool { return true }

func (Basedpyright) CheckArgv(target string) []string {
	return []string{"basedpyright", target}
}

// /path/file.py:12:5 - error: message (reportXxx)
var pyrightIssueRe = regexp.MustCompile(`^(.+?):(\d+):(\d+) - (error|warning|note|hint): (.+)$`)

// trailing "(ruleName)" tag on the message
var pyrightRuleRe = regexp.MustCompile(`\s+\(([A-Za-z][A-Za-z0-9]*)\)$`)

// 1 error, 2 warnings, 0 notes
var pyrightSummaryRe = regexp.MustCompile(`\d+ errors?, \d+ warnings?`)

func (t Basedpyright) Parse(res runner.Result, _ string) ParseResult {
	out := strings.TrimSpace(res.Output)
	if out == "" {
		return ParseResult{}
	}

	var pr ParseResult
	sawSummary := false
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if pyrightSummaryRe.MatchString(trimmed) {
			sawSummary = true
			continue
		}
		m := pyrightIssueRe.FindStringSubmatch(trimmed)
		if m == nil {
			// Indented continuation lines extend the previous message.
			if len(pr.Diags) > 0 && strings.HasPrefix(line, "    ") && trimmed != "" {
				last := &pr.Diags[len(pr.Diags)-1]
				last.Message += " " + trimmed
			}
			continue
		}
		msg := strings.TrimSpace(m[5])
		rule := t.Name()
		if rm := pyrightRuleRe.FindStringSubmatch(msg); rm != nil {
			rule = rm[1]
			msg = strings.TrimSpace(strings.TrimSuffix(msg, rm[0]))
		}
		pr.Diags = append(pr.Diags, diag.New(
			t.Name(), diag.ParseSeverity(m[4]),
			m[1], parsePos(m[2]), parsePos(m[3]),
			rule, msg,
		))
	}

	if len(pr.Diags) == 0 && !sawSummary && res.ExitCode != 0 {
		pr.Failure = firstLine(out)
	}
	return pr
}
