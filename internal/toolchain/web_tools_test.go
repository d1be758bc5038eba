package toolchain

import (
	"strings"
	"testing"

	"qualhook/internal/diag"
	"qualhook/internal/runner"
)

func TestESLintParseStylish(t *testing.T) {
	out := "\n/project/src/app.ts\n" +
		"  31:5  error  'X' is defined but never used  no-unused-vars\n" +
		"  32:5  error  'X' is defined but never used  no-unused-vars\n" +
		"  40:1  warning  Expected '===' and instead saw '=='  eqeqeq\n" +
		"\n✖ 3 problems (2 errors, 1 warning)\n"
	pr := ESLint{}.Parse(runner.Result{Output: out, ExitCode: 1}, "src/app.ts")
	if pr.Failure != "" {
		t.Fatalf("unexpected failure %q", pr.Failure)
	}
	if len(pr.Diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(pr.Diags))
	}
	d := pr.Diags[0]
	if d.Path != "/project/src/app.ts" || d.Line != 31 || d.Rule != "no-unused-vars" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Message != "'X' is defined but never used" {
		t.Fatalf("unexpected message %q", d.Message)
	}
	if pr.Diags[2].Severity != diag.SevWarning || pr.Diags[2].Rule != "eqeqeq" {
		t.Fatalf("unexpected diagnostic %+v", pr.Diags[2])
	}
}

func TestESLintParseClean(t *testing.T) {
	pr := ESLint{}.Parse(runner.Result{Output: ""}, "src/app.ts")
	if len(pr.Diags) != 0 || pr.Failure != "" {
		t.Fatalf("clean run must parse empty, got %+v", pr)
	}
}

func TestESLintParseSummaryOnlyFallback(t *testing.T) {
	out := "✖ 2 problems (2 errors, 0 warnings)\n"
	pr := ESLint{}.Parse(runner.Result{Output: out, ExitCode: 1}, "src/app.ts")
	if len(pr.Diags) != 0 {
		t.Fatalf("no rows should parse, got %+v", pr.Diags)
	}
	if !strings.Contains(pr.Failure, "2 error(s)") {
		t.Fatalf("expected summary fallback, got %q", pr.Failure)
	}
}

func TestTscParseErrors(t *testing.T) {
	out := "src/app.ts(10,5): error TS2322: Type 'string' is not assignable to type 'number'.\n" +
		"src/app.ts(18,1): error TS2304: Cannot find name 'foo'.\n"
	pr := Tsc{}.Parse(runner.Result{Output: out, ExitCode: 2}, "src/app.ts")
	if pr.Failure != "" {
		t.Fatalf("unexpected failure %q", pr.Failure)
	}
	if len(pr.Diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(pr.Diags))
	}
	d := pr.Diags[0]
	if d.Rule != "TS2322" || d.Line != 10 || d.Col != 5 || d.Severity != diag.SevError {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestTscParseCleanExit(t *testing.T) {
	pr := Tsc{}.Parse(runner.Result{Output: "", ExitCode: 0}, "src/app.ts")
	if len(pr.Diags) != 0 || pr.Failure != "" {
		t.Fatalf("exit 0 must parse empty, got %+v", pr)
	}
}

func TestPrettierParseSyntaxError(t *testing.T) {
	out := "[error] src/app.ts: SyntaxError: Unexpected token (5:10)\n"
	pr := Prettier{}.Parse(runner.Result{Output: out, ExitCode: 2}, "src/app.ts")
	if pr.Failure != "" {
		t.Fatalf("unexpected failure %q", pr.Failure)
	}
	if len(pr.Diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(pr.Diags))
	}
	d := pr.Diags[0]
	if d.Path != "src/app.ts" || d.Line != 5 || d.Col != 10 || d.Rule != "SyntaxError" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestPrettierParseCleanOrFixed(t *testing.T) {
	pr := Prettier{}.Parse(runner.Result{Output: "src/app.ts 42ms\n", ExitCode: 0}, "src/app.ts")
	if len(pr.Diags) != 0 || pr.Failure != "" {
		t.Fatalf("exit 0 must be silent, got %+v", pr)
	}
}

func TestPrettierParseUnexpectedWriteFailure(t *testing.T) {
	pr := Prettier{}.Parse(runner.Result{Output: "[warn] src/app.ts\n", ExitCode: 1}, "src/app.ts")
	if !strings.Contains(pr.Failure, "--write failed?") {
		t.Fatalf("expected warning line, got %+v", pr)
	}
}
