package toolchain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"qualhook/internal/diag"
	"qualhook/internal/runner"
)

// ESLint runs an auto-fix pass first and then parses what the plain
// check pass still reports (stylish formatter, ESLint's default).
type ESLint struct{}

func (ESLint) Name() string { return "eslint" }

func (ESLint) FixArgv(target string) []string {
	return []string{"eslint", "--fix", target}
}

func (ESLint) CheckArgv(target string) []string {
	return []string{"eslint", target}
}

var (
	//   12:5  error  Message text  rule-id
	eslintRowRe = regexp.MustCompile(`^\s+(\d+):(\d+)\s+(error|warning)\s+(.+?)\s{2,}([\w@/-]+)\s*$`)
	// ✖ 2 problems (2 errors, 0 warnings)
	eslintSummaryRe = regexp.MustCompile(`✖ (\d+) problems? \((\d+) errors?, (\d+) warnings?\)`)
)

func (t ESLint) Parse(res runner.Result, _ string) ParseResult {
	out := res.Output
	if strings.TrimSpace(out) == "" || strings.Contains(out, "✖ 0 problems") {
		return ParseResult{}
	}

	var pr ParseResult
	currentPath := ""
	for _, line := range strings.Split(out, "\n") {
		if m := eslintRowRe.FindStringSubmatch(line); m != nil {
			pr.Diags = append(pr.Diags, diag.New(
				t.Name(), diag.ParseSeverity(m[3]),
				currentPath, parsePos(m[1]), parsePos(m[2]),
				m[5], strings.TrimSpace(m[4]),
			))
			continue
		}
		// Stylish file headers are the non-indented, non-summary lines.
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(line, " ") && !strings.HasPrefix(trimmed, "✖") {
			currentPath = trimmed
		}
	}

	if len(pr.Diags) == 0 {
		if m := eslintSummaryRe.FindStringSubmatch(out); m != nil {
			if total, err := strconv.Atoi(m[1]); err == nil && total > 0 {
				pr.Failure = fmt.Sprintf("%s error(s), %s warning(s) (unparseable detail)", m[2], m[3])
			}
		} else if res.ExitCode != 0 {
			pr.Failure = firstLine(out)
		}
	}
	return pr
}
