// Package picker lets the user choose one theme from a list.
package picker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"ftm/internal/models"
	"ftm/internal/proc"
)

// Picker chooses one entry. ok is false when the user cancelled.
type Picker interface {
	Pick(ctx context.Context, entries []models.ThemeEntry) (entry models.ThemeEntry, ok bool, err error)
}

// New returns the fzf picker when fzfBin is installed and the built-in one
// otherwise.
func New(fzfBin, fastfetchBin string, runner proc.Runner) Picker {
	if runner == nil {
		runner = proc.ExecRunner{}
	}
	if _, err := runner.LookPath(fzfBin); err == nil {
		return NewFZF(fzfBin, fastfetchBin, runner)
	}
	return NewBuiltin()
}

// FZF drives an external fzf process
type FZF struct {
	bin          string
	fastfetchBin string
	runner       proc.Runner
	stderr       io.Writer
}

// NewFZF creates an fzf picker. The preview pane runs fastfetchBin on the
// highlighted preset.
func NewFZF(bin, fastfetchBin string, runner proc.Runner) *FZF {
	return &FZF{
		bin:          bin,
		fastfetchBin: fastfetchBin,
		runner:       runner,
		stderr:       os.Stderr,
	}
}

// Args returns the fzf command line
func (f *FZF) Args() []string {
	return []string{
		"--delimiter=\t",
		"--with-nth=1,2",
		"--preview", f.fastfetchBin + " --config {3} || true",
		"--preview-window=right,70%",
		"--header", "Pick a theme (ENTER to select)",
	}
}

// Pick writes one record per entry to fzf and maps the selection back
func (f *FZF) Pick(ctx context.Context, entries []models.ThemeEntry) (models.ThemeEntry, bool, error) {
	if len(entries) == 0 {
		return models.ThemeEntry{}, false, nil
	}

	records := make([]string, len(entries))
	for i, e := range entries {
		records[i] = e.Record()
	}

	var stdout bytes.Buffer
	code, err := f.runner.Run(ctx, proc.Command{
		Name:   f.bin,
		Args:   f.Args(),
		Stdin:  strings.NewReader(strings.Join(records, "\n") + "\n"),
		Stdout: &stdout,
		Stderr: f.stderr,
	})
	if err != nil {
		return models.ThemeEntry{}, false, fmt.Errorf("failed to run %s: %w", f.bin, err)
	}

	switch code {
	case 0:
	case 1, 130:
		// no match, or interrupted with ESC / ctrl-c
		return models.ThemeEntry{}, false, nil
	default:
		return models.ThemeEntry{}, false, fmt.Errorf("%s exited with status %d", f.bin, code)
	}

	line := strings.TrimSpace(stdout.String())
	if line == "" {
		return models.ThemeEntry{}, false, nil
	}
	key, _, _ := strings.Cut(line, "\t")

	e, ok := lookup(entries, key)
	if !ok {
		return models.ThemeEntry{}, false, fmt.Errorf("%s returned unknown theme %q", f.bin, key)
	}
	return e, true, nil
}

// lookup finds the entry with key
func lookup(entries []models.ThemeEntry, key string) (models.ThemeEntry, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return models.ThemeEntry{}, false
}
