// Package scanner enumerates fastfetch preset files under the located data
// roots and the user themes directory.
package scanner

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"ftm/internal/config"
	"ftm/internal/models"

	"github.com/charmbracelet/log"
)

// presetLayouts are the preset directories checked under each root. Older
// fastfetch releases nest them under a tool-name directory.
var presetLayouts = []string{
	filepath.Join("fastfetch", "presets"),
	"presets",
}

// examplesDir is the subdirectory holding bundled example presets
const examplesDir = "examples"

// Scanner collects preset files
type Scanner struct {
	userDir string
	logger  *log.Logger
}

// New creates a new Scanner that also reads userDir
func New(userDir string, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scanner{userDir: userDir, logger: logger}
}

// Scan returns every preset under roots followed by the user themes.
// Order: roots in the given order, system presets before examples inside
// each layout, then user themes.
func (s *Scanner) Scan(roots []string) []models.ThemeEntry {
	var entries []models.ThemeEntry

	for _, root := range roots {
		for _, layout := range presetLayouts {
			dir := filepath.Join(root, layout)
			if !s.isDir(dir) {
				continue
			}

			entries = append(entries, s.collectFiles(dir, models.OriginSystem)...)
			entries = append(entries, s.collectFiles(filepath.Join(dir, examplesDir), models.OriginExample)...)
		}
	}

	entries = append(entries, s.collectFiles(s.userDir, models.OriginUser)...)

	s.logger.Debug("scan complete", "roots", len(roots), "entries", len(entries))
	return entries
}

// collectFiles lists the presets directly inside dir in lexicographic order
func (s *Scanner) collectFiles(dir string, origin models.Origin) []models.ThemeEntry {
	if dir == "" {
		return nil
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("skipping unreadable directory", "dir", dir, "error", err)
		}
		return nil
	}

	var entries []models.ThemeEntry
	for _, d := range dirEntries {
		if s.shouldSkip(dir, d) {
			continue
		}
		entries = append(entries, models.NewThemeEntry(filepath.Join(dir, d.Name()), origin))
	}

	return entries
}

// shouldSkip returns true for anything that is not a visible preset file.
// Symlinks count when they resolve to a regular file.
func (s *Scanner) shouldSkip(dir string, d os.DirEntry) bool {
	name := d.Name()
	if strings.HasPrefix(name, ".") || filepath.Ext(name) != config.PresetExt {
		return true
	}
	if d.Type()&os.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, name))
		return err != nil || !info.Mode().IsRegular()
	}
	return !d.Type().IsRegular()
}

// isDir checks if path is an existing directory
func (s *Scanner) isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
