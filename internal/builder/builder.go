// Package builder produces preset documents from a handful of choices.
package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ftm/internal/config"
	"ftm/internal/fsutil"
)

// SchemaURL is written into every generated preset
const SchemaURL = "https://github.com/fastfetch-cli/fastfetch/raw/dev/doc/json_schema.json"

// moduleKeys maps the names shown to users to fastfetch module keys, in the
// order they are offered.
var moduleKeys = []struct {
	name string
	key  string
}{
	{"Title", "title"},
	{"Separator", "separator"},
	{"OS", "os"},
	{"Host", "host"},
	{"Kernel", "kernel"},
	{"Uptime", "uptime"},
	{"Packages", "packages"},
	{"Shell", "shell"},
	{"Display", "display"},
	{"DE", "de"},
	{"WM", "wm"},
	{"Theme", "theme"},
	{"Icons", "icons"},
	{"Font", "font"},
	{"Cursor", "cursor"},
	{"Terminal", "terminal"},
	{"Terminal Font", "terminalfont"},
	{"CPU", "cpu"},
	{"GPU", "gpu"},
	{"Memory", "memory"},
	{"Swap", "swap"},
	{"Disk", "disk"},
	{"Local IP", "localip"},
	{"Battery", "battery"},
	{"Locale", "locale"},
	{"Break", "break"},
	{"Colors", "colors"},
}

// Colors offered for display.color
var Colors = []string{"blue", "cyan", "green", "magenta", "red", "yellow", "white"}

// Spec is what the user chose
type Spec struct {
	Name      string
	Logo      string   // Logo source, empty for the default
	Separator string   // Between key and value
	Color     string   // Key color
	Modules   []string // Human-readable module names, in display order
}

// Document is the JSON written to disk
type Document struct {
	Schema  string   `json:"$schema,omitempty"`
	Logo    *Logo    `json:"logo,omitempty"`
	Display Display  `json:"display"`
	Modules []string `json:"modules"`
}

// Logo selects the logo fastfetch draws
type Logo struct {
	Source string `json:"source"`
}

// Display holds the display options the builder sets
type Display struct {
	Separator string `json:"separator,omitempty"`
	Color     string `json:"color,omitempty"`
}

// ModuleNames returns the names ModuleKey accepts, in offering order
func ModuleNames() []string {
	names := make([]string, len(moduleKeys))
	for i, m := range moduleKeys {
		names[i] = m.name
	}
	return names
}

// ModuleKey maps a human-readable module name to its fastfetch key. Matching
// ignores case and surrounding space.
func ModuleKey(name string) (string, error) {
	name = strings.TrimSpace(name)
	for _, m := range moduleKeys {
		if strings.EqualFold(m.name, name) || m.key == strings.ToLower(name) {
			return m.key, nil
		}
	}
	return "", fmt.Errorf("unknown module %q", name)
}

// Document converts the spec, keeping module order
func (s Spec) Document() (Document, error) {
	if len(s.Modules) == 0 {
		return Document{}, fmt.Errorf("at least one module is required")
	}

	doc := Document{
		Schema: SchemaURL,
		Display: Display{
			Separator: s.Separator,
			Color:     strings.TrimSpace(s.Color),
		},
		Modules: make([]string, 0, len(s.Modules)),
	}
	if logo := strings.TrimSpace(s.Logo); logo != "" {
		doc.Logo = &Logo{Source: logo}
	}

	for _, name := range s.Modules {
		key, err := ModuleKey(name)
		if err != nil {
			return Document{}, err
		}
		doc.Modules = append(doc.Modules, key)
	}
	return doc, nil
}

// Build renders the spec as an indented JSON preset
func Build(s Spec) ([]byte, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save writes data into dir as <slug>.jsonc and returns the path
func Save(dir, name string, data []byte) (string, error) {
	slug := Slugify(name)
	if slug == "" {
		return "", fmt.Errorf("name is required")
	}

	path := filepath.Join(dir, slug+config.PresetExt)
	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save theme: %w", err)
	}
	return path, nil
}

// ReadModules returns the module keys of a preset written by Build
func ReadModules(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc.Modules, nil
}

// Slugify turns a display name into a file name
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(input, config.PresetExt)))
	if s == "" {
		return ""
	}

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		isAlphaNum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
		if isAlphaNum {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "custom"
	}
	return out
}
