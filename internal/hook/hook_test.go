package hook

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qualhook/internal/runner"
	"qualhook/internal/testkit"
)

func pythonFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[project]\nname = \"app\"\n"), 0o644); err != nil {
		t.Fatalf("write pyproject: %v", err)
	}
	target := filepath.Join(dir, "app.py")
	if err := os.WriteFile(target, []byte("import os\n"), 0o644); err != nil {
		t.Fatalf("write target: %v", err)
	}
	return target
}

func TestDecodeEventIgnoresUnknownFields(t *testing.T) {
	in := `{"session_id":"abc","hook_event_name":"PostToolUse","tool_name":"Edit","tool_input":{"file_path":"/tmp/a.py","old_string":"x"}}`
	ev, err := DecodeEvent(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.ToolInput.FilePath != "/tmp/a.py" {
		t.Fatalf("file_path = %q", ev.ToolInput.FilePath)
	}
	if ev.HookEventName != "PostToolUse" {
		t.Fatalf("event name = %q", ev.HookEventName)
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent(strings.NewReader("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEncodeOutputEnvelope(t *testing.T) {
	var b strings.Builder
	if err := EncodeOutput(&b, "", "ruff: 1 error(s)"); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := b.String()
	for _, want := range []string{`"hookSpecificOutput"`, `"hookEventName":"PostToolUse"`, `"additionalContext":"ruff: 1 error(s)"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("envelope missing %s: %s", want, got)
		}
	}
}

func TestRunSkipsUnknownExtension(t *testing.T) {
	res, err := Run(context.Background(), runner.NewFake(), Event{ToolInput: ToolInput{FilePath: "/tmp/readme.md"}}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result, got %+v", res)
	}
}

func TestRunSkipsMissingFile(t *testing.T) {
	res, err := Run(context.Background(), runner.NewFake(), Event{ToolInput: ToolInput{FilePath: "/nonexistent/app.py"}}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result, got %+v", res)
	}
}

func TestRunSkipsEmptyPath(t *testing.T) {
	res, err := Run(context.Background(), runner.NewFake(), Event{}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result, got %+v", res)
	}
}

func TestRunCleanFileIsSilent(t *testing.T) {
	target := pythonFile(t)
	fake := runner.NewFake()
	fake.Script("ruff", runner.Result{Output: "All checks passed!\n"})
	fake.Script("basedpyright", runner.Result{Output: "0 errors, 0 warnings, 0 notes\n"})
	fake.Script("bandit", runner.Result{})

	res, err := Run(context.Background(), fake, Event{ToolInput: ToolInput{FilePath: target}}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result for an in-scope file")
	}
	if res.Message != "" {
		t.Fatalf("expected empty message, got %q", res.Message)
	}
	if len(res.Reports) != 3 {
		t.Fatalf("reports = %d, want 3", len(res.Reports))
	}
}

func TestRunReportsGroupedIssues(t *testing.T) {
	target := pythonFile(t)
	fake := runner.NewFake()
	fake.Script("ruff", runner.Result{
		Output: target + ":31:1: F401 `os` imported but unused\n" +
			target + ":32:1: F401 `os` imported but unused\n" +
			target + ":56:1: F401 `os` imported but unused\n" +
			"Found 3 errors.\n",
		ExitCode: 1,
	})
	fake.Script("basedpyright", runner.Result{Output: "0 errors, 0 warnings, 0 notes\n"})
	fake.Script("bandit", runner.Result{})

	res, err := Run(context.Background(), fake, Event{ToolInput: ToolInput{FilePath: target}}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res == nil || res.Message == "" {
		t.Fatal("expected feedback for a failing file")
	}
	if !strings.HasPrefix(res.Message, "Code quality for app.py:") {
		t.Fatalf("message header wrong:\n%s", res.Message)
	}
	if !strings.Contains(res.Message, "3× at lines 31, 32, 56: `os` imported but unused") {
		t.Fatalf("expected grouped line in message:\n%s", res.Message)
	}
	if strings.Contains(res.Message, "basedpyright") || strings.Contains(res.Message, "bandit") {
		t.Fatalf("passing tools must not appear:\n%s", res.Message)
	}
	for _, rep := range res.Reports {
		if err := testkit.CheckReportInvariants(rep); err != nil {
			t.Fatalf("report %s: %v", rep.Tool, err)
		}
	}
}

func TestRunTimeoutBecomesWarningLine(t *testing.T) {
	target := pythonFile(t)
	fake := runner.NewFake()
	fake.Script("ruff", runner.Result{Output: "All checks passed!\n"})
	fake.Script("basedpyright", runner.Result{TimedOut: true, Output: "partial"})
	fake.Script("bandit", runner.Result{})

	res, err := Run(context.Background(), fake, Event{ToolInput: ToolInput{FilePath: target}}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res == nil || res.Message == "" {
		t.Fatal("expected feedback when a tool times out")
	}
	if !strings.Contains(res.Message, "basedpyright: tool timed out") {
		t.Fatalf("expected timeout warning:\n%s", res.Message)
	}
	if strings.Contains(res.Message, "partial") {
		t.Fatalf("partial output must be discarded:\n%s", res.Message)
	}
}

func TestBuildMessageEmptyForNoReports(t *testing.T) {
	if msg := BuildMessage("/tmp/a.py", nil); msg != "" {
		t.Fatalf("expected empty message, got %q", msg)
	}
}

func TestRunSummarizesTypeCheckerWarnings(t *testing.T) {
	target := pythonFile(t)
	fake := runner.NewFake()
	fake.Script("ruff", runner.Result{Output: "All checks passed!\n"})
	fake.Script("basedpyright", runner.Result{
		Output: target + `:12:5 - warning: "os" is not accessed (reportUnusedImport)` + "\n" +
			"0 errors, 1 warning, 0 notes\n",
		ExitCode: 1,
	})
	fake.Script("bandit", runner.Result{})

	res, err := Run(context.Background(), fake, Event{ToolInput: ToolInput{FilePath: target}}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res == nil || res.Message == "" {
		t.Fatal("expected feedback for remaining warnings")
	}
	if !strings.Contains(res.Message, "- basedpyright: 1 warning(s) in app.py") {
		t.Fatalf("expected warning count bullet:\n%s", res.Message)
	}
	if strings.Contains(res.Message, "not accessed") {
		t.Fatalf("warning detail must stay summarized:\n%s", res.Message)
	}
}

func TestRunKeepsTypeCheckerErrorDetail(t *testing.T) {
	target := pythonFile(t)
	fake := runner.NewFake()
	fake.Script("ruff", runner.Result{Output: "All checks passed!\n"})
	fake.Script("basedpyright", runner.Result{
		Output: target + `:4:1 - error: Argument of type "str" is not assignable (reportArgumentType)` + "\n" +
			target + `:12:5 - warning: "os" is not accessed (reportUnusedImport)` + "\n" +
			"1 error, 1 warning, 0 notes\n",
		ExitCode: 1,
	})
	fake.Script("bandit", runner.Result{})

	res, err := Run(context.Background(), fake, Event{ToolInput: ToolInput{FilePath: target}}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result")
	}
	if !strings.Contains(res.Message, "1 error(s), 1 warning(s)") {
		t.Fatalf("expected combined summary:\n%s", res.Message)
	}
	if !strings.Contains(res.Message, "line 4:") {
		t.Fatalf("error detail must surface:\n%s", res.Message)
	}
	if strings.Contains(res.Message, "not accessed") {
		t.Fatalf("warning detail must stay summarized:\n%s", res.Message)
	}
}
