package models

import (
	"path/filepath"
	"strings"
)

// ThemeEntry is one discovered preset
type ThemeEntry struct {
	Key    string // Unique within a resolved set
	Origin Origin // Where the preset came from
	Path   string // Location on disk
}

// NewThemeEntry creates an entry for the preset at path with the key its origin implies
func NewThemeEntry(path string, origin Origin) ThemeEntry {
	return ThemeEntry{
		Key:    origin.KeyPrefix() + Stem(path),
		Origin: origin,
		Path:   path,
	}
}

// Name returns the key without its origin prefix
func (e ThemeEntry) Name() string {
	return BareName(e.Key)
}

// HasPath reports whether the entry points at a file
func (e ThemeEntry) HasPath() bool {
	return e.Path != ""
}

// Record returns the tab-separated line used by external pickers
func (e ThemeEntry) Record() string {
	return e.Key + "\t" + e.Origin.String() + "\t" + e.Path
}

// Stem returns the file name without its extension
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// BareName strips the examples/ or user/ prefix from a key
func BareName(key string) string {
	for _, o := range []Origin{OriginExample, OriginUser} {
		if p := o.KeyPrefix(); strings.HasPrefix(key, p) {
			return key[len(p):]
		}
	}
	return key
}
