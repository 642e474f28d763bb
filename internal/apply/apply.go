// Package apply makes a preset the active fastfetch configuration.
package apply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ftm/internal/backup"
	"ftm/internal/config"
	"ftm/internal/fsutil"
	"ftm/internal/models"

	"github.com/charmbracelet/log"
)

// Tool is the part of the fastfetch client the applier needs
type Tool interface {
	Validate(ctx context.Context, config string) error
	GenConfig(ctx context.Context, preset, dest string) error
}

// ConfirmFunc asks the user a yes/no question
type ConfirmFunc func(prompt string) bool

// Result describes one change to the active configuration
type Result struct {
	Entry    models.ThemeEntry
	Dest     string               // Active configuration path
	Backup   string               // Backup taken before the change, empty if none
	Cleanup  backup.CleanupResult // Retention pass, never fatal
	Valid    bool                 // The tool accepted the new configuration
	Restored bool                 // The backup was put back after a failed validation
}

// Applier copies presets over the active configuration
type Applier struct {
	cfg     *config.Config
	tool    Tool
	backups *backup.Manager
	confirm ConfirmFunc
	logger  *log.Logger
}

// New creates an Applier. A nil confirm never restores on a failed validation.
func New(cfg *config.Config, tool Tool, backups *backup.Manager, confirm ConfirmFunc, logger *log.Logger) *Applier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if backups == nil {
		backups = backup.New(cfg.BackupDir, logger)
	}
	return &Applier{
		cfg:     cfg,
		tool:    tool,
		backups: backups,
		confirm: confirm,
		logger:  logger,
	}
}

// Backups returns the backup manager used by the applier
func (a *Applier) Backups() *backup.Manager {
	return a.backups
}

// Apply makes entry the active configuration. Entries without a file on
// disk are handed to the tool's generator instead.
func (a *Applier) Apply(ctx context.Context, entry models.ThemeEntry) (*Result, error) {
	if !entry.HasPath() || !pathExists(entry.Path) {
		a.logger.Debug("no preset file, using generator", "theme", entry.Key)
		return a.Generate(ctx, entry.Key)
	}

	result, taken, err := a.prepare(entry)
	if err != nil {
		return nil, err
	}

	if err := fsutil.CopyFile(entry.Path, a.cfg.ActiveConfig); err != nil {
		a.logger.Error("copy failed", "theme", entry.Key, "error", err)
		if taken != nil {
			if rerr := a.backups.Restore(*taken, a.cfg.ActiveConfig); rerr != nil {
				return result, errors.Join(fmt.Errorf("failed to apply %s: %w", entry.Key, err), rerr)
			}
			result.Restored = true
		}
		return result, fmt.Errorf("failed to apply %s: %w", entry.Key, err)
	}
	a.logger.Debug("theme applied", "theme", entry.Key, "dest", a.cfg.ActiveConfig)

	a.validate(ctx, result, taken)
	return result, nil
}

// Reset backs up the active configuration and lets the tool write its
// defaults in its place.
func (a *Applier) Reset(ctx context.Context) (*Result, error) {
	return a.generate(ctx, models.ThemeEntry{}, "")
}

// Generate asks the tool to write the active configuration from a preset name
// it knows about.
func (a *Applier) Generate(ctx context.Context, name string) (*Result, error) {
	entry := models.ThemeEntry{Key: name}
	return a.generate(ctx, entry, name)
}

func (a *Applier) generate(ctx context.Context, entry models.ThemeEntry, preset string) (*Result, error) {
	result, taken, err := a.prepare(entry)
	if err != nil {
		return nil, err
	}

	genErr := a.tool.GenConfig(ctx, preset, a.cfg.ActiveConfig)
	if genErr == nil && !a.cfg.ActiveExists() {
		genErr = fmt.Errorf("fastfetch reported success but %s was not written", a.cfg.ActiveConfig)
	}
	if genErr != nil {
		if taken != nil {
			if rerr := a.backups.Restore(*taken, a.cfg.ActiveConfig); rerr != nil {
				a.logger.Error("restore failed", "backup", taken.Path, "error", rerr)
			} else {
				result.Restored = true
			}
		}
		return result, fmt.Errorf("failed to generate configuration: %w", genErr)
	}

	result.Valid = true
	return result, nil
}

// prepare creates the directories, backs up the active configuration and
// applies retention.
func (a *Applier) prepare(entry models.ThemeEntry) (*Result, *backup.Backup, error) {
	result, taken, err := a.snapshot(entry)
	if err != nil {
		return nil, nil, err
	}
	a.prune(result)
	return result, taken, nil
}

// snapshot creates the directories and backs up the active configuration
// when there is one.
func (a *Applier) snapshot(entry models.ThemeEntry) (*Result, *backup.Backup, error) {
	if err := a.cfg.EnsureDirectories(); err != nil {
		return nil, nil, err
	}

	result := &Result{Entry: entry, Dest: a.cfg.ActiveConfig}
	if !a.cfg.ActiveExists() {
		return result, nil, nil
	}

	b, err := a.backups.Create(a.cfg.ActiveConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to back up active configuration: %w", err)
	}
	result.Backup = b.Path
	return result, &b, nil
}

func (a *Applier) prune(result *Result) {
	result.Cleanup = a.backups.Prune(a.cfg.MaxBackups)
	for _, ce := range result.Cleanup.Errors {
		a.logger.Warn("could not remove old backup", "path", ce.Path, "error", ce.Error)
	}
}

// RestoreBackup puts the n-th newest backup back as the active configuration.
// The configuration it replaces is backed up first, and retention runs only
// after the copy so the chosen backup cannot be pruned before it is used.
func (a *Applier) RestoreBackup(n int) (*Result, error) {
	target, err := a.backups.At(n)
	if err != nil {
		return nil, err
	}

	entry := models.ThemeEntry{Key: filepath.Base(target.Path), Path: target.Path}
	result, _, err := a.snapshot(entry)
	if err != nil {
		return nil, err
	}

	if err := a.backups.Restore(target, a.cfg.ActiveConfig); err != nil {
		return result, err
	}
	result.Valid = true

	a.prune(result)
	return result, nil
}

// validate runs the tool against the new configuration and offers to roll
// back when it fails.
func (a *Applier) validate(ctx context.Context, result *Result, taken *backup.Backup) {
	err := a.tool.Validate(ctx, a.cfg.ActiveConfig)
	if err == nil {
		result.Valid = true
		return
	}

	a.logger.Warn("fastfetch rejected the new configuration", "theme", result.Entry.Key, "error", err)
	if taken == nil || a.confirm == nil {
		return
	}
	if !a.confirm("fastfetch failed with the new configuration. Restore the previous one?") {
		return
	}

	if err := a.backups.Restore(*taken, a.cfg.ActiveConfig); err != nil {
		a.logger.Error("restore failed", "backup", taken.Path, "error", err)
		return
	}
	result.Restored = true
}

// AddTheme copies src into the user themes directory as <name>.jsonc, where
// name defaults to the file's stem.
func (a *Applier) AddTheme(src, name string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("theme file not found: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("theme file %s is a directory", src)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = models.Stem(src)
	}
	if strings.ContainsRune(name, os.PathSeparator) {
		return "", fmt.Errorf("invalid theme name %q", name)
	}

	dest := a.cfg.UserThemePath(name)
	if err := fsutil.CopyFile(src, dest); err != nil {
		return "", fmt.Errorf("failed to add theme: %w", err)
	}
	a.logger.Debug("theme added", "dest", dest)
	return dest, nil
}

// pathExists checks if a path exists
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
