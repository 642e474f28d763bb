package fastfetch

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"ftm/internal/proc"
	"ftm/internal/proc/proctest"
)

func TestAvailable(t *testing.T) {
	runner := &proctest.Runner{Installed: map[string]bool{"fastfetch": true}}
	if err := New("fastfetch", runner, nil).Available(); err != nil {
		t.Errorf("Available() error = %v", err)
	}

	err := New("missing-tool", runner, nil).Available()
	if !errors.Is(err, ErrToolMissing) {
		t.Errorf("expected ErrToolMissing, got %v", err)
	}
}

func TestListDataPaths(t *testing.T) {
	runner := &proctest.Runner{
		Handler: func(cmd proc.Command, _ string) proctest.Response {
			return proctest.Response{Stdout: "  /usr/share/fastfetch \n\n/home/u/.local/share/fastfetch\n"}
		},
	}

	paths, err := New("fastfetch", runner, nil).ListDataPaths(context.Background())
	if err != nil {
		t.Fatalf("ListDataPaths() error = %v", err)
	}

	want := []string{"/usr/share/fastfetch", "/home/u/.local/share/fastfetch"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}

	if got := runner.Calls[0].Line(); got != "fastfetch --list-data-paths" {
		t.Errorf("unexpected invocation: %s", got)
	}
}

func TestListDataPathsNonZero(t *testing.T) {
	runner := &proctest.Runner{
		Handler: func(proc.Command, string) proctest.Response {
			return proctest.Response{Code: 2, Stderr: "unknown option"}
		},
	}

	_, err := New("fastfetch", runner, nil).ListDataPaths(context.Background())

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected *ToolError, got %v", err)
	}
	if toolErr.Code != 2 || toolErr.Stderr != "unknown option" {
		t.Errorf("unexpected tool error: %+v", toolErr)
	}
}

func TestValidate(t *testing.T) {
	runner := &proctest.Runner{
		Handler: func(cmd proc.Command, _ string) proctest.Response {
			if proctest.ArgAfter(cmd, "--config") == "/bad.jsonc" {
				return proctest.Response{Code: 1}
			}
			return proctest.Response{}
		},
	}
	c := New("fastfetch", runner, nil)

	if err := c.Validate(context.Background(), "/good.jsonc"); err != nil {
		t.Errorf("Validate(good) error = %v", err)
	}
	if err := c.Validate(context.Background(), "/bad.jsonc"); err == nil {
		t.Error("Validate(bad) should fail")
	}
	if proctest.ArgAfter(proc.Command{Args: runner.Calls[0].Args}, "--pipe") != "true" {
		t.Error("Validate should run with --pipe true")
	}
}

func TestPreviewWritesOutput(t *testing.T) {
	runner := &proctest.Runner{
		Handler: func(proc.Command, string) proctest.Response {
			return proctest.Response{Stdout: "OS: Linux\n"}
		},
	}

	var buf bytes.Buffer
	if err := New("fastfetch", runner, nil).Preview(context.Background(), "/x.jsonc", &buf); err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if buf.String() != "OS: Linux\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestGenConfig(t *testing.T) {
	runner := &proctest.Runner{}
	c := New("fastfetch", runner, nil)

	if err := c.GenConfig(context.Background(), "", "/cfg/config.jsonc"); err != nil {
		t.Fatalf("GenConfig() error = %v", err)
	}
	if err := c.GenConfig(context.Background(), "neofetch", "/cfg/config.jsonc"); err != nil {
		t.Fatalf("GenConfig() error = %v", err)
	}

	if got := runner.Calls[0].Line(); got != "fastfetch --gen-config-force /cfg/config.jsonc" {
		t.Errorf("unexpected invocation: %s", got)
	}
	if got := runner.Calls[1].Line(); got != "fastfetch --config neofetch --gen-config-force /cfg/config.jsonc" {
		t.Errorf("unexpected invocation: %s", got)
	}
}

func TestRunnerError(t *testing.T) {
	runner := &proctest.Runner{
		Handler: func(proc.Command, string) proctest.Response {
			return proctest.Response{Err: errors.New("exec format error")}
		},
	}

	if _, err := New("fastfetch", runner, nil).Capture(context.Background(), "/x"); err == nil {
		t.Error("Capture should surface start failures")
	}
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"\n\n", 0},
		{"a\nb\n", 2},
		{" a \r\n b", 2},
	}

	for _, tt := range tests {
		if got := ParseLines(tt.input); len(got) != tt.want {
			t.Errorf("ParseLines(%q) returned %d lines, want %d", tt.input, len(got), tt.want)
		}
	}
}
