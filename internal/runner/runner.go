package runner

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout caps one external tool run.
const DefaultTimeout = 30 * time.Second

// Result captures one finished tool invocation.
type Result struct {
	Output   string // combined stdout+stderr
	ExitCode int
	TimedOut bool
	StartErr error // non-nil when the process could not start at all
}

// Runner executes one external tool command against a working
// directory. Implementations must terminate the process when the
// context deadline passes.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string, timeout time.Duration) Result
}

// Exec runs real subprocesses.
type Exec struct{}

// Run invokes argv with combined output capture. On deadline the
// process is force-terminated; the partial output is still returned in
// Result.Output but callers discard it rather than aggregating
// truncated diagnostics.
func (Exec) Run(ctx context.Context, dir string, argv []string, timeout time.Duration) Result {
	if len(argv) == 0 {
		return Result{StartErr: errors.New("empty command")}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if dir != "" {
		cmd.Dir = dir
	}
	output, err := cmd.CombinedOutput()
	res := Result{Output: string(output)}

	if ctx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		return res
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res
		}
		// Binary missing, permission denied, and friends.
		res.StartErr = err
		return res
	}
	return res
}

// Command renders argv for log and error messages.
func Command(argv []string) string {
	return strings.Join(argv, " ")
}
