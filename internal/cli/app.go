package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"ftm/internal/apply"
	"ftm/internal/backup"
	"ftm/internal/builder"
	"ftm/internal/catalog"
	"ftm/internal/config"
	"ftm/internal/fastfetch"
	"ftm/internal/locator"
	"ftm/internal/proc"
	"ftm/internal/scanner"
	"ftm/internal/ui"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// app carries the flags and collaborators shared by every command
type app struct {
	// Flags
	settingsPath string
	debug        bool
	yes          bool

	// Collaborators, replaced in tests
	cfg        *config.Config
	runner     proc.Runner
	httpClient *http.Client
	stdin      io.Reader
	out        io.Writer
	errOut     io.Writer
	logger     *log.Logger
	confirmFn  apply.ConfirmFunc
	wizardFn   func() (builder.Spec, error)
}

func newApp() *app {
	return &app{
		runner: proc.ExecRunner{},
		stdin:  os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// setup loads settings and builds the logger. It runs before every command.
func (a *app) setup() error {
	if a.logger == nil {
		a.logger = log.NewWithOptions(a.errOut, log.Options{
			Prefix:          "ftm",
			ReportTimestamp: false,
			Level:           log.WarnLevel,
		})
	}
	if a.debug {
		a.logger.SetLevel(log.DebugLevel)
	}

	if a.settingsPath == "" {
		a.settingsPath = config.SettingsPath()
	}
	if a.cfg != nil {
		return nil
	}

	path := a.settingsPath
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.logger.Debug("settings loaded", "path", path)
	a.cfg = cfg
	return nil
}

// client returns the fastfetch client
func (a *app) client() *fastfetch.Client {
	return fastfetch.New(a.cfg.FastfetchBin, a.runner, a.logger)
}

// requireTool fails with ErrToolMissing when fastfetch is not installed
func (a *app) requireTool() (*fastfetch.Client, error) {
	c := a.client()
	if err := c.Available(); err != nil {
		return nil, &ExitError{
			Code: ExitToolMissing,
			Err:  fmt.Errorf("%w. Install it from https://github.com/fastfetch-cli/fastfetch", err),
		}
	}
	return c, nil
}

// catalog locates data roots, scans them and deduplicates the result
func (a *app) catalog(ctx context.Context) (*catalog.Catalog, error) {
	roots, err := locator.New(a.client(), a.cfg.FallbackDataPaths, a.logger).Locate(ctx)
	if err != nil {
		return nil, err
	}

	entries := scanner.New(a.cfg.UserThemesDir, a.logger).Scan(roots)
	return catalog.New(entries), nil
}

// backups returns the backup manager
func (a *app) backups() *backup.Manager {
	return backup.New(a.cfg.BackupDir, a.logger)
}

// applier wires the applier to the fastfetch client and the confirm prompt
func (a *app) applier(tool apply.Tool) *apply.Applier {
	return apply.New(a.cfg, tool, a.backups(), a.confirm, a.logger)
}

// confirm asks a yes/no question. --yes answers yes; without a terminal the
// answer is no.
func (a *app) confirm(prompt string) bool {
	if a.yes {
		return true
	}
	if a.confirmFn != nil {
		return a.confirmFn(prompt)
	}
	if !isTerminal(a.stdin) {
		a.logger.Debug("not a terminal, declining prompt", "prompt", prompt)
		return false
	}

	var ok bool
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return err == nil && ok
}

// isTerminal reports whether v is a file attached to a terminal
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// printf writes to the command output
func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// notify writes a styled status line
func (a *app) notify(kind, msg string) {
	fmt.Fprintln(a.out, ui.RenderNotification(kind, msg))
}

// reportResult prints the outcome of an apply, reset or generate
func (a *app) reportResult(verb string, r *apply.Result) {
	if r.Backup != "" {
		a.notify("info", "backup saved → "+r.Backup)
	}
	if n := len(r.Cleanup.Removed); n > 0 {
		a.logger.Debug("old backups removed", "count", n)
	}

	switch {
	case r.Restored:
		a.notify("warning", "previous configuration restored")
	case !r.Valid:
		a.notify("warning", fmt.Sprintf("%s → %s, but fastfetch reported an error with it", verb, r.Dest))
	default:
		a.notify("success", fmt.Sprintf("%s → %s", verb, r.Dest))
	}
}
