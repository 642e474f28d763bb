// Package proc runs external collaborators (fastfetch, fzf) behind a small
// interface so callers can be tested without the real binaries.
package proc

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Command describes one process invocation
type Command struct {
	Name   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner starts processes and reports their exit status
type Runner interface {
	// Run executes cmd and waits for it. A non-zero exit is reported through
	// the returned code with a nil error; err is set only when the process
	// could not be started or was interrupted.
	Run(ctx context.Context, cmd Command) (code int, err error)

	// LookPath resolves a binary name on PATH
	LookPath(name string) (string, error)
}

// ExecRunner is the Runner backed by os/exec
type ExecRunner struct{}

// Run executes the command with os/exec
func (ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return exitErr.ExitCode(), nil
	}
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	return -1, err
}

// LookPath resolves name with exec.LookPath
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
