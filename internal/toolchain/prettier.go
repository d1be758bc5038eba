package toolchain

import (
	"fmt"
	"regexp"
	"strings"

	"qualhook/internal/diag"
	"qualhook/internal/runner"
)

// Prettier runs `prettier --write`. Exit 0 means clean or silently
// fixed; exit 2 means a syntax error prevented formatting; exit 1
// after --write is unexpected and degrades to a warning line.
type Prettier struct{}

func (Prettier) Name() string { return "prettier" }

func (Prettier) FixArgv(string) []string { return nil }

func (Prettier) CheckArgv(target string) []string {
	return []string{"prettier", "--write", target}
}

// [error] path/to/file.ts: SyntaxError: message (10:5)
var prettierErrRe = regexp.MustCompile(`\[error\] ([^:]+): (\w+): (.+?) \((\d+):(\d+)\)`)

func (t Prettier) Parse(res runner.Result, target string) ParseResult {
	if res.ExitCode == 0 {
		return ParseResult{}
	}

	if res.ExitCode == 2 {
		if m := prettierErrRe.FindStringSubmatch(res.Output); m != nil {
			return ParseResult{Diags: []diag.Diagnostic{diag.New(
				t.Name(), diag.SevError,
				strings.TrimSpace(m[1]), parsePos(m[4]), parsePos(m[5]),
				m[2], strings.TrimSpace(m[3]),
			)}}
		}
		return ParseResult{Failure: "syntax error (unparseable output)"}
	}

	if res.ExitCode == 1 {
		return ParseResult{Failure: fmt.Sprintf("formatting issues remain in %s (--write failed?)", target)}
	}
	return ParseResult{Failure: fmt.Sprintf("unexpected exit code %d", res.ExitCode)}
}
