// Package fastfetch talks to the external fastfetch binary.
package fastfetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ftm/internal/proc"

	"github.com/charmbracelet/log"
)

// ErrToolMissing is returned when the fastfetch binary cannot be found
var ErrToolMissing = errors.New("fastfetch not found")

// ToolError reports a non-zero exit from fastfetch
type ToolError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("fastfetch %s exited with status %d", strings.Join(e.Args, " "), e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Client invokes fastfetch through a proc.Runner
type Client struct {
	bin    string
	runner proc.Runner
	logger *log.Logger
}

// New creates a Client for the given binary name
func New(bin string, runner proc.Runner, logger *log.Logger) *Client {
	if runner == nil {
		runner = proc.ExecRunner{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{bin: bin, runner: runner, logger: logger}
}

// Available checks that the binary is on PATH
func (c *Client) Available() error {
	if _, err := c.runner.LookPath(c.bin); err != nil {
		return fmt.Errorf("%w (looked for %q): %v", ErrToolMissing, c.bin, err)
	}
	return nil
}

// ListDataPaths asks fastfetch for its data directories, one per line
func (c *Client) ListDataPaths(ctx context.Context) ([]string, error) {
	out, err := c.output(ctx, "--list-data-paths")
	if err != nil {
		return nil, err
	}
	return ParseLines(out), nil
}

// Preview renders a configuration straight to w
func (c *Client) Preview(ctx context.Context, config string, w io.Writer) error {
	args := []string{"--config", config}
	var stderr bytes.Buffer

	code, err := c.runner.Run(ctx, proc.Command{
		Name:   c.bin,
		Args:   args,
		Stdout: w,
		Stderr: &stderr,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return &ToolError{Args: args, Code: code, Stderr: strings.TrimSpace(stderr.String())}
	}
	return nil
}

// Capture renders a configuration and returns the colored output
func (c *Client) Capture(ctx context.Context, config string) (string, error) {
	return c.output(ctx, "--config", config, "--pipe", "false")
}

// Validate renders a configuration non-interactively and reports a non-zero
// exit as a *ToolError.
func (c *Client) Validate(ctx context.Context, config string) error {
	_, err := c.output(ctx, "--config", config, "--pipe", "true")
	return err
}

// GenConfig lets fastfetch write dest itself, optionally starting from a
// named preset.
func (c *Client) GenConfig(ctx context.Context, preset, dest string) error {
	var args []string
	if preset != "" {
		args = append(args, "--config", preset)
	}
	args = append(args, "--gen-config-force", dest)

	_, err := c.output(ctx, args...)
	return err
}

// output runs fastfetch with args and returns stdout
func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	c.logger.Debug("running fastfetch", "args", strings.Join(args, " "))
	code, err := c.runner.Run(ctx, proc.Command{
		Name:   c.bin,
		Args:   args,
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", c.bin, err)
	}
	if code != 0 {
		return stdout.String(), &ToolError{Args: args, Code: code, Stderr: strings.TrimSpace(stderr.String())}
	}
	return stdout.String(), nil
}

// ParseLines splits output into trimmed, non-empty lines
func ParseLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
