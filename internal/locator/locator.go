// Package locator finds the directories fastfetch keeps its presets under.
package locator

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ErrDiscovery is returned when no data path can be found by any strategy
var ErrDiscovery = errors.New("could not detect fastfetch preset paths")

// DataPathLister is the part of the fastfetch client the locator needs
type DataPathLister interface {
	ListDataPaths(ctx context.Context) ([]string, error)
}

// Locator produces the ordered list of roots to scan
type Locator struct {
	tool     DataPathLister
	fallback []string
	logger   *log.Logger
}

// New creates a Locator that asks tool first and falls back to the given paths
func New(tool DataPathLister, fallback []string, logger *log.Logger) *Locator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Locator{tool: tool, fallback: fallback, logger: logger}
}

// Locate returns the data paths reported by the tool, or the existing
// fallback locations when the tool fails or reports nothing.
func (l *Locator) Locate(ctx context.Context) ([]string, error) {
	if l.tool != nil {
		paths, err := l.tool.ListDataPaths(ctx)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			l.logger.Debug("data path query failed, using fallback", "error", err)
		case len(paths) == 0:
			l.logger.Debug("data path query returned nothing, using fallback")
		default:
			l.logger.Debug("data paths from fastfetch", "count", len(paths))
			return paths, nil
		}
	}

	var valid []string
	for _, p := range l.fallback {
		if pathExists(p) {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return nil, ErrDiscovery
	}

	l.logger.Debug("fallback data paths", "paths", valid)
	return valid, nil
}

// pathExists checks if a path exists
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
