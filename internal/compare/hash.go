// Package compare relates the active configuration to discovered presets.
package compare

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"ftm/internal/models"
)

// FileHash computes the SHA-256 of a file's content
func FileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// QuickHash returns first 8 chars of hash for display
func QuickHash(hash string) string {
	if len(hash) >= 8 {
		return hash[:8]
	}
	return hash
}

// ActiveKeys returns the keys of entries whose content equals the active
// configuration. A missing active configuration matches nothing.
func ActiveKeys(active string, entries []models.ThemeEntry) map[string]bool {
	matches := make(map[string]bool)

	activeHash, err := FileHash(active)
	if err != nil {
		return matches
	}

	activeInfo, _ := os.Stat(active)
	for _, e := range entries {
		if !e.HasPath() {
			continue
		}
		// Sizes differ, contents differ
		if info, err := os.Stat(e.Path); err != nil || (activeInfo != nil && info.Size() != activeInfo.Size()) {
			continue
		}
		if h, err := FileHash(e.Path); err == nil && h == activeHash {
			matches[e.Key] = true
		}
	}
	return matches
}
