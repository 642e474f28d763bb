// Package backup keeps timestamped copies of the active configuration.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"ftm/internal/fsutil"

	"github.com/charmbracelet/log"
)

// ErrNoBackup is returned when a restore is requested but nothing is backed up
var ErrNoBackup = errors.New("no backup available")

// backupExt is appended to every backup file name
const backupExt = ".bak"

// Manager handles backups in a single directory
type Manager struct {
	dir    string
	now    func() time.Time
	logger *log.Logger
}

// Backup is one backup file
type Backup struct {
	Path      string    // Full path of the backup
	Source    string    // Base name of the file that was backed up
	Timestamp time.Time // Unix timestamp from the file name
	ModTime   time.Time
	Size      int64
}

// CleanupResult reports the best-effort retention pass. Failures are
// collected here and never turn into an error for the caller.
type CleanupResult struct {
	Removed []string
	Errors  []CleanupError
}

// CleanupError represents a backup that could not be removed
type CleanupError struct {
	Path  string
	Error error
}

// OK reports whether every removal succeeded
func (r CleanupResult) OK() bool {
	return len(r.Errors) == 0
}

// New creates a new Manager for dir
func New(dir string, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{dir: dir, now: time.Now, logger: logger}
}

// Dir returns the backup directory
func (m *Manager) Dir() string {
	return m.dir
}

// Create copies src into the backup directory as <name>.<unix-ts>.bak.
// When a backup with the same second already exists the timestamp is moved
// forward, so each call produces exactly one new file.
func (m *Manager) Create(src string) (Backup, error) {
	info, err := os.Stat(src)
	if err != nil {
		return Backup{}, fmt.Errorf("failed to stat %s: %w", src, err)
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return Backup{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	base := filepath.Base(src)
	ts := m.now().Unix()
	dest := m.backupPath(base, ts)
	for pathExists(dest) {
		ts++
		dest = m.backupPath(base, ts)
	}

	if err := fsutil.CopyFile(src, dest); err != nil {
		return Backup{}, fmt.Errorf("failed to back up %s: %w", src, err)
	}

	// The modification time tracks the backup, not the source, so retention
	// orders backups by when they were taken.
	stamp := time.Unix(ts, 0)
	if err := os.Chtimes(dest, stamp, stamp); err != nil {
		m.logger.Debug("could not set backup time", "path", dest, "error", err)
	}

	m.logger.Debug("backup created", "path", dest)
	return Backup{
		Path:      dest,
		Source:    base,
		Timestamp: stamp,
		ModTime:   stamp,
		Size:      info.Size(),
	}, nil
}

// List returns all backups, newest first
func (m *Manager) List() ([]Backup, error) {
	dirEntries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Backup{}, nil
		}
		return nil, err
	}

	backups := []Backup{}
	for _, d := range dirEntries {
		if d.IsDir() {
			continue
		}
		source, ts, ok := parseName(d.Name())
		if !ok {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Backup{
			Path:      filepath.Join(m.dir, d.Name()),
			Source:    source,
			Timestamp: time.Unix(ts, 0),
			ModTime:   info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		a, b := backups[i], backups[j]
		if !a.ModTime.Equal(b.ModTime) {
			return a.ModTime.After(b.ModTime)
		}
		return a.Timestamp.After(b.Timestamp)
	})

	return backups, nil
}

// Latest returns the most recent backup
func (m *Manager) Latest() (Backup, error) {
	backups, err := m.List()
	if err != nil {
		return Backup{}, err
	}
	if len(backups) == 0 {
		return Backup{}, ErrNoBackup
	}
	return backups[0], nil
}

// Prune deletes all but the newest keep backups, oldest by modification time
// first.
func (m *Manager) Prune(keep int) CleanupResult {
	var result CleanupResult

	backups, err := m.List()
	if err != nil {
		result.Errors = append(result.Errors, CleanupError{Path: m.dir, Error: err})
		return result
	}
	if keep < 0 {
		keep = 0
	}

	for _, b := range backups[min(keep, len(backups)):] {
		if err := os.Remove(b.Path); err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: b.Path, Error: err})
			continue
		}
		result.Removed = append(result.Removed, b.Path)
	}

	if len(result.Removed) > 0 || len(result.Errors) > 0 {
		m.logger.Debug("pruned backups", "removed", len(result.Removed), "failed", len(result.Errors))
	}
	return result
}

// backupPath returns the path for a backup of base taken at ts
func (m *Manager) backupPath(base string, ts int64) string {
	return filepath.Join(m.dir, fmt.Sprintf("%s.%d%s", base, ts, backupExt))
}

// parseName splits "<source>.<unix-ts>.bak"
func parseName(name string) (source string, ts int64, ok bool) {
	if !strings.HasSuffix(name, backupExt) {
		return "", 0, false
	}
	trimmed := strings.TrimSuffix(name, backupExt)

	dot := strings.LastIndexByte(trimmed, '.')
	if dot <= 0 {
		return "", 0, false
	}

	ts, err := strconv.ParseInt(trimmed[dot+1:], 10, 64)
	if err != nil || ts < 0 {
		return "", 0, false
	}
	return trimmed[:dot], ts, true
}

// pathExists checks if a path exists
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
