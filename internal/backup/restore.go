package backup

import (
	"fmt"

	"ftm/internal/fsutil"
)

// Restore copies a backup over dest
func (m *Manager) Restore(b Backup, dest string) error {
	if err := fsutil.CopyFile(b.Path, dest); err != nil {
		return fmt.Errorf("failed to restore %s: %w", b.Path, err)
	}
	m.logger.Debug("restored backup", "backup", b.Path, "dest", dest)
	return nil
}

// RestoreLatest restores the most recent backup over dest
func (m *Manager) RestoreLatest(dest string) (Backup, error) {
	b, err := m.Latest()
	if err != nil {
		return Backup{}, err
	}
	return b, m.Restore(b, dest)
}

// At returns the n-th newest backup (0 is the latest)
func (m *Manager) At(n int) (Backup, error) {
	backups, err := m.List()
	if err != nil {
		return Backup{}, err
	}
	if len(backups) == 0 {
		return Backup{}, ErrNoBackup
	}
	if n < 0 || n >= len(backups) {
		return Backup{}, fmt.Errorf("backup %d out of range (have %d)", n, len(backups))
	}
	return backups[n], nil
}

// RestoreAt restores the n-th newest backup (0 is the latest) over dest
func (m *Manager) RestoreAt(n int, dest string) (Backup, error) {
	b, err := m.At(n)
	if err != nil {
		return Backup{}, err
	}
	return b, m.Restore(b, dest)
}
