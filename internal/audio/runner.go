package audio

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result holds the captured output of an external tool invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external program and waits for it to finish.
//
// Run returns a non-nil error only when the program could not be started
// or was interrupted. A program that ran and exited nonzero is reported
// through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctx.Err() != nil {
		return res, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return res, nil
	}
	if err != nil {
		res.ExitCode = -1
		return res, err
	}
	return res, nil
}

// runTool runs a tool and converts launch failures and nonzero exits into
// a *ToolError.
func runTool(ctx context.Context, runner Runner, tool string, args []string) (Result, error) {
	res, err := runner.Run(ctx, tool, args...)
	if err != nil {
		return res, &ToolError{Tool: tool, ExitCode: res.ExitCode, Stderr: res.Stderr, Err: err}
	}
	if res.ExitCode != 0 {
		return res, &ToolError{Tool: tool, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}
