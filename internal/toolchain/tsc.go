package toolchain

import (
	"regexp"
	"strings"

	"qualhook/internal/diag"
	"qualhook/internal/runner"
)

// Tsc type-checks without emitting. Every reported problem is an error.
type Tsc struct{}

func (Tsc) Name() string { return "tsc" }

func (Tsc) FixArgv(string) []string { return nil }

func (Tsc) CheckArgv(target string) []string {
	return []string{"tsc", "--noEmit", target}
}

// path/to/file.ts(10,5): error TS2322: message
var tscErrRe = regexp.MustCompile(`^(.+?)\((\d+),(\d+)\): error (TS\d+): (.+)$`)

func (t Tsc) Parse(res runner.Result, _ string) ParseResult {
	out := strings.TrimSpace(res.Output)
	if res.ExitCode == 0 || out == "" {
		return ParseResult{}
	}

	var pr ParseResult
	for _, line := range strings.Split(out, "\n") {
		m := tscErrRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		pr.Diags = append(pr.Diags, diag.New(
			t.Name(), diag.SevError,
			m[1], parsePos(m[2]), parsePos(m[3]),
			m[4], strings.TrimSpace(m[5]),
		))
	}

	if len(pr.Diags) == 0 {
		pr.Failure = firstLine(out)
	}
	return pr
}
