package apply

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ftm/internal/backup"
	"ftm/internal/config"
	"ftm/internal/fastfetch"
	"ftm/internal/models"
	"ftm/internal/proc"
	"ftm/internal/proc/proctest"
)

// fakeTool records calls and writes dest on GenConfig
type fakeTool struct {
	validateErr error
	genErr      error
	genContent  string
	validated   []string
	generated   []string
}

func (f *fakeTool) Validate(ctx context.Context, config string) error {
	f.validated = append(f.validated, config)
	return f.validateErr
}

func (f *fakeTool) GenConfig(ctx context.Context, preset, dest string) error {
	f.generated = append(f.generated, preset)
	if f.genErr != nil {
		return f.genErr
	}
	return os.WriteFile(dest, []byte(f.genContent), 0644)
}

func setupTestEnv(t *testing.T) (*config.Config, string) {
	tmpDir := t.TempDir()
	cfg := config.DefaultFor(filepath.Join(tmpDir, "home"))

	presets := filepath.Join(tmpDir, "presets")
	os.MkdirAll(presets, 0755)
	return cfg, presets
}

func writePreset(t *testing.T, dir, name, content string) models.ThemeEntry {
	t.Helper()
	path := filepath.Join(dir, name+".jsonc")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return models.NewThemeEntry(path, models.OriginSystem)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestApplyFreshInstall(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	entry := writePreset(t, presets, "os", `{"modules": ["os"]}`)
	tool := &fakeTool{}

	a := New(cfg, tool, nil, nil, nil)
	result, err := a.Apply(context.Background(), entry)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got := readFile(t, cfg.ActiveConfig); got != `{"modules": ["os"]}` {
		t.Errorf("active config = %q", got)
	}
	if result.Backup != "" {
		t.Errorf("no backup expected without a previous config, got %s", result.Backup)
	}
	if !result.Valid {
		t.Error("expected valid result")
	}
	if len(tool.validated) != 1 || tool.validated[0] != cfg.ActiveConfig {
		t.Errorf("expected validation of the active config, got %v", tool.validated)
	}
	for _, dir := range []string{cfg.UserThemesDir, cfg.BackupDir} {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("directory %s not created", dir)
		}
	}
}

func TestApplyCreatesOneBackup(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	entry := writePreset(t, presets, "os", "new")

	os.MkdirAll(cfg.ConfigDir, 0755)
	os.WriteFile(cfg.ActiveConfig, []byte("old"), 0644)

	a := New(cfg, &fakeTool{}, nil, nil, nil)
	before := time.Now().Truncate(time.Second)

	result, err := a.Apply(context.Background(), entry)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	backups, _ := a.Backups().List()
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != result.Backup {
		t.Errorf("result backup %s does not match %s", result.Backup, backups[0].Path)
	}
	if backups[0].Timestamp.Before(before) {
		t.Errorf("backup timestamp %v is before apply time %v", backups[0].Timestamp, before)
	}
	if got := readFile(t, result.Backup); got != "old" {
		t.Errorf("backup content = %q", got)
	}
	if !strings.HasPrefix(filepath.Base(result.Backup), "config.jsonc.") {
		t.Errorf("unexpected backup name %s", result.Backup)
	}
}

func TestApplyRetention(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	entry := writePreset(t, presets, "os", "new")

	os.MkdirAll(cfg.ConfigDir, 0755)
	os.WriteFile(cfg.ActiveConfig, []byte("old"), 0644)

	a := New(cfg, &fakeTool{}, nil, nil, nil)
	for i := 0; i < 11; i++ {
		result, err := a.Apply(context.Background(), entry)
		if err != nil {
			t.Fatalf("Apply() #%d error = %v", i, err)
		}
		if !result.Cleanup.OK() {
			t.Fatalf("cleanup errors: %v", result.Cleanup.Errors)
		}
	}

	backups, _ := a.Backups().List()
	if len(backups) != config.DefaultMaxBackups {
		t.Errorf("expected %d backups, got %d", config.DefaultMaxBackups, len(backups))
	}
}

func TestApplyCopyFailureRestores(t *testing.T) {
	cfg, presets := setupTestEnv(t)

	os.MkdirAll(cfg.ConfigDir, 0755)
	os.WriteFile(cfg.ActiveConfig, []byte("old"), 0644)

	// A directory cannot be copied over the active config
	broken := filepath.Join(presets, "broken.jsonc")
	os.MkdirAll(broken, 0755)
	entry := models.NewThemeEntry(broken, models.OriginUser)

	tool := &fakeTool{}
	a := New(cfg, tool, nil, nil, nil)
	result, err := a.Apply(context.Background(), entry)
	if err == nil {
		t.Fatal("expected copy error")
	}
	if result == nil || result.Backup == "" {
		t.Fatal("expected a backup to be reported")
	}
	if got := readFile(t, cfg.ActiveConfig); got != "old" {
		t.Errorf("active config should be restored, got %q", got)
	}
	if len(tool.validated) != 0 {
		t.Error("validation should not run after a failed copy")
	}
}

func TestApplyValidationFailure(t *testing.T) {
	tests := []struct {
		name     string
		answer   bool
		confirm  bool
		want     string
		restored bool
	}{
		{"restore accepted", true, true, "old", true},
		{"restore declined", false, true, "new", false},
		{"no prompt available", false, false, "new", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, presets := setupTestEnv(t)
			entry := writePreset(t, presets, "bad", "new")

			os.MkdirAll(cfg.ConfigDir, 0755)
			os.WriteFile(cfg.ActiveConfig, []byte("old"), 0644)

			var prompts []string
			var confirm ConfirmFunc
			if tt.confirm {
				confirm = func(prompt string) bool {
					prompts = append(prompts, prompt)
					return tt.answer
				}
			}

			tool := &fakeTool{validateErr: errors.New("exit status 1")}
			a := New(cfg, tool, nil, confirm, nil)
			result, err := a.Apply(context.Background(), entry)
			if err != nil {
				t.Fatalf("validation failure must not be an error, got %v", err)
			}

			if result.Valid {
				t.Error("expected invalid result")
			}
			if result.Restored != tt.restored {
				t.Errorf("Restored = %v, want %v", result.Restored, tt.restored)
			}
			if tt.confirm && len(prompts) != 1 {
				t.Errorf("expected one prompt, got %d", len(prompts))
			}
			if got := readFile(t, cfg.ActiveConfig); got != tt.want {
				t.Errorf("active config = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyWithoutPathGenerates(t *testing.T) {
	cfg, _ := setupTestEnv(t)
	tool := &fakeTool{genContent: "generated"}

	a := New(cfg, tool, nil, nil, nil)
	result, err := a.Apply(context.Background(), models.ThemeEntry{Key: "neofetch"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(tool.generated) != 1 || tool.generated[0] != "neofetch" {
		t.Errorf("expected generator for neofetch, got %v", tool.generated)
	}
	if !result.Valid {
		t.Error("expected valid result")
	}
	if got := readFile(t, cfg.ActiveConfig); got != "generated" {
		t.Errorf("active config = %q", got)
	}
}

func TestReset(t *testing.T) {
	cfg, _ := setupTestEnv(t)
	os.MkdirAll(cfg.ConfigDir, 0755)
	os.WriteFile(cfg.ActiveConfig, []byte("custom"), 0644)

	tool := &fakeTool{genContent: "defaults"}
	a := New(cfg, tool, nil, nil, nil)

	result, err := a.Reset(context.Background())
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if len(tool.generated) != 1 || tool.generated[0] != "" {
		t.Errorf("reset should not pass a preset, got %v", tool.generated)
	}
	if got := readFile(t, result.Backup); got != "custom" {
		t.Errorf("backup content = %q", got)
	}
	if got := readFile(t, cfg.ActiveConfig); got != "defaults" {
		t.Errorf("active config = %q", got)
	}
}

func TestResetFailureRestores(t *testing.T) {
	cfg, _ := setupTestEnv(t)
	os.MkdirAll(cfg.ConfigDir, 0755)
	os.WriteFile(cfg.ActiveConfig, []byte("custom"), 0644)

	a := New(cfg, &fakeTool{genErr: errors.New("boom")}, nil, nil, nil)
	result, err := a.Reset(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !result.Restored {
		t.Error("expected backup to be restored")
	}
	if got := readFile(t, cfg.ActiveConfig); got != "custom" {
		t.Errorf("active config = %q", got)
	}
}

func TestApplyWithFastfetchClient(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	entry := writePreset(t, presets, "os", "new")

	runner := &proctest.Runner{
		Handler: func(cmd proc.Command, stdin string) proctest.Response {
			if proctest.ArgAfter(cmd, "--pipe") == "true" {
				return proctest.Response{Code: 1, Stderr: "JSON parse error"}
			}
			return proctest.Response{}
		},
	}
	client := fastfetch.New("fastfetch", runner, nil)

	a := New(cfg, client, backup.New(cfg.BackupDir, nil), nil, nil)
	result, err := a.Apply(context.Background(), entry)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.Valid {
		t.Error("non-zero validation status should mark the result invalid")
	}

	want := "fastfetch --config " + cfg.ActiveConfig + " --pipe true"
	if len(runner.Calls) != 1 || runner.Calls[0].Line() != want {
		t.Errorf("unexpected calls: %+v", runner.Calls)
	}
}

func TestAddTheme(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	src := filepath.Join(presets, "mine.jsonc")
	os.WriteFile(src, []byte("{}"), 0644)

	a := New(cfg, &fakeTool{}, nil, nil, nil)

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "mine.jsonc", false},
		{"custom", "custom.jsonc", false},
		{"custom.jsonc", "custom.jsonc", false},
		{"a/b", "", true},
	}

	for _, tt := range tests {
		dest, err := a.AddTheme(src, tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("AddTheme(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if dest != filepath.Join(cfg.UserThemesDir, tt.want) {
			t.Errorf("AddTheme(%q) = %s", tt.name, dest)
		}
		if readFile(t, dest) != "{}" {
			t.Errorf("AddTheme(%q) content mismatch", tt.name)
		}
	}
}

func TestAddThemeMissingSource(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	a := New(cfg, &fakeTool{}, nil, nil, nil)

	if _, err := a.AddTheme(filepath.Join(presets, "nope.jsonc"), ""); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestApplyMissingFileGenerates(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	tool := &fakeTool{genContent: "generated"}

	entry := models.NewThemeEntry(filepath.Join(presets, "gone.jsonc"), models.OriginSystem)
	a := New(cfg, tool, nil, nil, nil)
	if _, err := a.Apply(context.Background(), entry); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(tool.generated) != 1 || tool.generated[0] != "gone" {
		t.Errorf("expected generator for gone, got %v", tool.generated)
	}
}

func TestRestoreBackup(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	os.MkdirAll(cfg.ConfigDir, 0755)
	os.WriteFile(cfg.ActiveConfig, []byte("v1"), 0644)

	a := New(cfg, &fakeTool{}, nil, nil, nil)
	for _, v := range []string{"v2", "v3"} {
		if _, err := a.Apply(context.Background(), writePreset(t, presets, v, v)); err != nil {
			t.Fatalf("Apply(%s) error = %v", v, err)
		}
	}

	result, err := a.RestoreBackup(1)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if got := readFile(t, cfg.ActiveConfig); got != "v1" {
		t.Errorf("active config = %q, want v1", got)
	}
	if result.Backup == "" {
		t.Fatal("replaced configuration was not backed up")
	}
	if got := readFile(t, result.Backup); got != "v3" {
		t.Errorf("backup of replaced config = %q, want v3", got)
	}

	backups, _ := a.Backups().List()
	if len(backups) != 3 {
		t.Errorf("expected 3 backups, got %d", len(backups))
	}

	if _, err := a.RestoreBackup(9); err == nil {
		t.Error("RestoreBackup should fail when out of range")
	}
}

func TestRestoreBackupOldestSurvivesRetention(t *testing.T) {
	cfg, presets := setupTestEnv(t)
	cfg.MaxBackups = 2
	os.MkdirAll(cfg.ConfigDir, 0755)
	os.WriteFile(cfg.ActiveConfig, []byte("v1"), 0644)

	a := New(cfg, &fakeTool{}, nil, nil, nil)
	for _, v := range []string{"v2", "v3"} {
		if _, err := a.Apply(context.Background(), writePreset(t, presets, v, v)); err != nil {
			t.Fatalf("Apply(%s) error = %v", v, err)
		}
	}

	if _, err := a.RestoreBackup(1); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if got := readFile(t, cfg.ActiveConfig); got != "v1" {
		t.Errorf("active config = %q, want v1", got)
	}

	backups, _ := a.Backups().List()
	if len(backups) != 2 {
		t.Errorf("expected 2 backups after retention, got %d", len(backups))
	}
}

func TestRestoreBackupNoBackups(t *testing.T) {
	cfg, _ := setupTestEnv(t)

	a := New(cfg, &fakeTool{}, nil, nil, nil)
	if _, err := a.RestoreBackup(0); !errors.Is(err, backup.ErrNoBackup) {
		t.Errorf("expected ErrNoBackup, got %v", err)
	}
}
