package toolchain

import (
	"regexp"
	"strings"

	"qualhook/internal/diag"
	"qualhook/internal/runner"
)

// Bandit runs the security scanner in quiet mode. Exit 0 means no
// findings; exit 1 with ">> Issue:" blocks means findings.
type Bandit struct{}

func (Bandit) Name() string { return "bandit" }

func (Bandit) FixArgv(string) []string { return nil }

func (Bandit) CheckArgv(target string) []string {
	return []string{"bandit", "-q", target}
}

var (
	// >> Issue: [B602:subprocess_popen_with_shell_equals_true] message
	banditIssueRe = regexp.MustCompile(`^>> Issue: \[([A-Z]\d+):([a-z0-9_]+)\] (.+)$`)
	banditSevRe   = regexp.MustCompile(`Severity: (\w+)`)
	// Location: ./app.py:12:0
	banditLocRe = regexp.MustCompile(`Location: (.+?):(\d+)(?::(\d+))?$`)
)

func (t Bandit) Parse(res runner.Result, _ string) ParseResult {
	out := strings.TrimSpace(res.Output)
	if res.ExitCode == 0 || out == "" {
		return ParseResult{}
	}

	var pr ParseResult
	var pending *diag.Diagnostic
	for _, raw := range strings.Split(out, "\n") {
		line := strings.TrimSpace(raw)
		if m := banditIssueRe.FindStringSubmatch(line); m != nil {
			pending = &diag.Diagnostic{
				Tool:     t.Name(),
				Severity: diag.SevWarning,
				Rule:     m[1],
				Message:  strings.TrimSpace(m[3]),
			}
			continue
		}
		if pending == nil {
			continue
		}
		if m := banditSevRe.FindStringSubmatch(line); m != nil {
			pending.Severity = diag.ParseSeverity(m[1])
			continue
		}
		if m := banditLocRe.FindStringSubmatch(line); m != nil {
			pending.Path = m[1]
			pending.Line = parsePos(m[2])
			if m[3] != "" {
				pending.Col = parsePos(m[3])
			}
			pr.Diags = append(pr.Diags, *pending)
			pending = nil
		}
	}

	if len(pr.Diags) == 0 {
		if strings.Contains(out, "Issue:") {
			pr.Failure = "security issues detected (unparseable output)"
		} else {
			pr.Failure = firstLine(out)
		}
	}
	return pr
}
