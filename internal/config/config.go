package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every path and knob the theme manager needs. It is built once
// at startup and passed to each component.
type Config struct {
	ConfigDir         string   `yaml:"config_dir"`          // fastfetch config directory
	ActiveConfig      string   `yaml:"active_config"`       // file fastfetch reads by default
	UserThemesDir     string   `yaml:"user_themes_dir"`     // user-added presets
	BackupDir         string   `yaml:"backup_dir"`          // backups of the active config
	MaxBackups        int      `yaml:"max_backups"`         // backups kept after each apply
	FastfetchBin      string   `yaml:"fastfetch_bin"`       // display tool binary
	FzfBin            string   `yaml:"fzf_bin"`             // fuzzy picker binary
	FallbackDataPaths []string `yaml:"fallback_data_paths"` // used when the tool cannot list its data paths
	RemoteRepo        string   `yaml:"remote_repo"`         // owner/name on GitHub
	RemotePath        string   `yaml:"remote_path"`         // directory inside the repo
	GitHubAPI         string   `yaml:"github_api"`          // contents API base URL

	homeDir string
}

// PresetExt is the only extension recognised as a preset file
const PresetExt = ".jsonc"

// DefaultMaxBackups is the retention used when the settings file does not set one
const DefaultMaxBackups = 10

// settingsFileName is the name of the settings file
const settingsFileName = "settings.yaml"

// Default returns the default configuration for the current user
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return DefaultFor(homeDir)
}

// DefaultFor returns the default configuration rooted at homeDir.
func DefaultFor(homeDir string) *Config {
	configDir := filepath.Join(homeDir, ".config", "fastfetch")

	return &Config{
		ConfigDir:     configDir,
		ActiveConfig:  filepath.Join(configDir, "config"+PresetExt),
		UserThemesDir: filepath.Join(homeDir, ".local", "share", "fastfetch", "themes"),
		BackupDir:     filepath.Join(configDir, "backups"),
		MaxBackups:    DefaultMaxBackups,
		FastfetchBin:  "fastfetch",
		FzfBin:        "fzf",
		FallbackDataPaths: []string{
			"/usr/share/fastfetch",
			filepath.Join(homeDir, "fastfetch"),
			filepath.Join(homeDir, ".local", "share", "fastfetch"),
		},
		RemoteRepo: "fastfetch-cli/fastfetch",
		RemotePath: "presets/examples",
		GitHubAPI:  "https://api.github.com",
		homeDir:    homeDir,
	}
}

// SettingsPath returns the path to the settings file
func SettingsPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "ftm", settingsFileName)
}

// Load reads the settings file at path and fills what it leaves unset from
// the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = SettingsPath()
	}
	homeDir, _ := os.UserHomeDir()
	return loadFor(homeDir, path)
}

// loadFor reads path into an empty Config so paths derived from an
// overridden config_dir follow it.
func loadFor(homeDir, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultFor(homeDir), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	cfg := &Config{homeDir: homeDir}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to path as YAML
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// normalize expands ~ in paths and fills values the file left empty
func (c *Config) normalize() {
	def := DefaultFor(c.homeDir)

	c.ConfigDir = c.ExpandPath(c.ConfigDir)
	c.ActiveConfig = c.ExpandPath(c.ActiveConfig)
	c.UserThemesDir = c.ExpandPath(c.UserThemesDir)
	c.BackupDir = c.ExpandPath(c.BackupDir)

	if c.ConfigDir == "" {
		c.ConfigDir = def.ConfigDir
	}
	if c.ActiveConfig == "" {
		c.ActiveConfig = filepath.Join(c.ConfigDir, "config"+PresetExt)
	}
	if c.UserThemesDir == "" {
		c.UserThemesDir = def.UserThemesDir
	}
	if c.BackupDir == "" {
		c.BackupDir = filepath.Join(c.ConfigDir, "backups")
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = DefaultMaxBackups
	}
	if c.FastfetchBin == "" {
		c.FastfetchBin = def.FastfetchBin
	}
	if c.FzfBin == "" {
		c.FzfBin = def.FzfBin
	}
	if c.RemoteRepo == "" {
		c.RemoteRepo = def.RemoteRepo
	}
	if c.RemotePath == "" {
		c.RemotePath = def.RemotePath
	}
	if c.GitHubAPI == "" {
		c.GitHubAPI = def.GitHubAPI
	}

	paths := make([]string, 0, len(c.FallbackDataPaths))
	for _, p := range c.FallbackDataPaths {
		if p = c.ExpandPath(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		paths = def.FallbackDataPaths
	}
	c.FallbackDataPaths = paths
}

// ExpandPath expands a leading ~ to the home directory
func (c *Config) ExpandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return c.homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(c.homeDir, path[2:])
	}
	return path
}

// EnsureDirectories creates the config, user themes and backup directories
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.ConfigDir,
		filepath.Dir(c.ActiveConfig),
		c.UserThemesDir,
		c.BackupDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ActiveExists checks if an active configuration is present
func (c *Config) ActiveExists() bool {
	info, err := os.Stat(c.ActiveConfig)
	return err == nil && !info.IsDir()
}

// UserThemePath returns where a user theme called name is stored
func (c *Config) UserThemePath(name string) string {
	return filepath.Join(c.UserThemesDir, strings.TrimSuffix(name, PresetExt)+PresetExt)
}
