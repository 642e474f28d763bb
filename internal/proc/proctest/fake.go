// Package proctest provides a scripted proc.Runner for tests.
package proctest

import (
	"context"
	"errors"
	"io"
	"strings"

	"ftm/internal/proc"
)

// Response is what a faked process writes and returns
type Response struct {
	Stdout string
	Stderr string
	Code   int
	Err    error
}

// Runner is a fake proc.Runner. Handler decides the response for each call;
// Installed lists the binaries LookPath finds.
type Runner struct {
	Handler   func(cmd proc.Command, stdin string) Response
	Installed map[string]bool
	Calls     []Call
}

// Call records one Run invocation
type Call struct {
	Name  string
	Args  []string
	Stdin string
}

// Line returns the invocation as a single space-separated string
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Run records the call and replays the handler's response
func (r *Runner) Run(ctx context.Context, cmd proc.Command) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	var stdin string
	if cmd.Stdin != nil {
		data, _ := io.ReadAll(cmd.Stdin)
		stdin = string(data)
	}
	r.Calls = append(r.Calls, Call{Name: cmd.Name, Args: append([]string(nil), cmd.Args...), Stdin: stdin})

	var resp Response
	if r.Handler != nil {
		resp = r.Handler(cmd, stdin)
	}
	if cmd.Stdout != nil && resp.Stdout != "" {
		io.WriteString(cmd.Stdout, resp.Stdout)
	}
	if cmd.Stderr != nil && resp.Stderr != "" {
		io.WriteString(cmd.Stderr, resp.Stderr)
	}
	if resp.Err != nil {
		return -1, resp.Err
	}
	return resp.Code, nil
}

// LookPath finds binaries listed in Installed
func (r *Runner) LookPath(name string) (string, error) {
	if r.Installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

// HasArg reports whether cmd carries arg
func HasArg(cmd proc.Command, arg string) bool {
	for _, a := range cmd.Args {
		if a == arg {
			return true
		}
	}
	return false
}

// ArgAfter returns the argument following flag, or ""
func ArgAfter(cmd proc.Command, flag string) string {
	for i, a := range cmd.Args {
		if a == flag && i+1 < len(cmd.Args) {
			return cmd.Args[i+1]
		}
	}
	return ""
}
