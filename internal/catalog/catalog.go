// Package catalog merges scanned presets into a uniquely keyed, ordered set
// and resolves user tokens against it.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ftm/internal/config"
	"ftm/internal/models"
)

// ErrNotFound is returned when a token matches no entry
var ErrNotFound = errors.New("theme not found")

// Catalog is the deduplicated, order-preserving set of themes
type Catalog struct {
	entries []models.ThemeEntry
}

// New deduplicates entries and wraps them
func New(entries []models.ThemeEntry) *Catalog {
	return &Catalog{entries: Dedupe(entries)}
}

// Entries returns the entries in list order
func (c *Catalog) Entries() []models.ThemeEntry {
	out := make([]models.ThemeEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at position i
func (c *Catalog) At(i int) (models.ThemeEntry, bool) {
	if i < 0 || i >= len(c.entries) {
		return models.ThemeEntry{}, false
	}
	return c.entries[i], true
}

// Dedupe keeps one entry per bare name. The highest origin precedence wins
// (User, then Example, then System) whatever the scan order; ties keep the
// first seen. A name that collided is published under the bare name, a
// name seen once keeps its scanned key. Output follows first appearance.
func Dedupe(entries []models.ThemeEntry) []models.ThemeEntry {
	type group struct {
		entry    models.ThemeEntry
		collided bool
	}

	index := make(map[string]int)
	var groups []group

	for _, e := range entries {
		name := e.Name()
		i, seen := index[name]
		if !seen {
			index[name] = len(groups)
			groups = append(groups, group{entry: e})
			continue
		}

		g := &groups[i]
		g.collided = true
		if e.Origin.Precedence() > g.entry.Origin.Precedence() {
			g.entry = e
		}
	}

	out := make([]models.ThemeEntry, 0, len(groups))
	for _, g := range groups {
		e := g.entry
		if g.collided {
			e.Key = e.Name()
		}
		out = append(out, e)
	}
	return out
}

// Resolve finds the entry a token refers to. Rules are tried in order and
// the first match wins:
//  1. a non-negative integer is a position in list order
//  2. exact key, or the scanned key ("user/os") of an entry re-keyed by Dedupe
//  3. key ending in "/"+token
//  4. case-insensitive substring of the key
func (c *Catalog) Resolve(token string) (models.ThemeEntry, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.ThemeEntry{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	if idx, err := strconv.Atoi(token); err == nil && idx >= 0 {
		if e, ok := c.At(idx); ok {
			return e, nil
		}
	}

	for _, e := range c.entries {
		if e.Key == token {
			return e, nil
		}
	}
	for _, e := range c.entries {
		if e.Origin.KeyPrefix()+e.Name() == token {
			return e, nil
		}
	}

	for _, e := range c.entries {
		if strings.HasSuffix(e.Key, "/"+token) {
			return e, nil
		}
	}

	lower := strings.ToLower(token)
	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.Key), lower) {
			return e, nil
		}
	}

	return models.ThemeEntry{}, fmt.Errorf("%w: %s", ErrNotFound, token)
}

// ResolvePath accepts either a path to a preset file on disk or a token
func (c *Catalog) ResolvePath(arg string) (models.ThemeEntry, error) {
	if looksLikePresetFile(arg) {
		abs, err := filepath.Abs(arg)
		if err != nil {
			abs = arg
		}
		return models.ThemeEntry{
			Key:    models.Stem(abs),
			Origin: models.OriginUser,
			Path:   abs,
		}, nil
	}
	return c.Resolve(arg)
}

// looksLikePresetFile checks if arg names an existing preset file
func looksLikePresetFile(arg string) bool {
	if filepath.Ext(arg) != config.PresetExt {
		return false
	}
	info, err := os.Stat(arg)
	return err == nil && info.Mode().IsRegular()
}
