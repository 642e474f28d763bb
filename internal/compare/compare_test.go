package compare

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ftm/internal/models"
)

func TestFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.jsonc")

	if err := os.WriteFile(tmpFile, []byte("Hello, World!"), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	hash, err := FileHash(tmpFile)
	if err != nil {
		t.Fatalf("FileHash failed: %v", err)
	}

	// sha256("Hello, World!")
	want := "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f"
	if hash != want {
		t.Errorf("FileHash = %s, want %s", hash, want)
	}

	if _, err := FileHash(filepath.Join(tmpDir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestQuickHash(t *testing.T) {
	if got := QuickHash("0123456789abcdef"); got != "01234567" {
		t.Errorf("QuickHash = %s", got)
	}
	if got := QuickHash("abc"); got != "abc" {
		t.Errorf("QuickHash short = %s", got)
	}
}

func TestActiveKeys(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(tmpDir, name)
		os.WriteFile(path, []byte(content), 0644)
		return path
	}

	active := write("config.jsonc", `{"modules": ["os"]}`)
	entries := []models.ThemeEntry{
		{Key: "os", Origin: models.OriginSystem, Path: write("os.jsonc", `{"modules": ["os"]}`)},
		{Key: "kernel", Origin: models.OriginSystem, Path: write("kernel.jsonc", `{"modules": ["kn"]}`)},
		{Key: "long", Origin: models.OriginSystem, Path: write("long.jsonc", `{"modules": ["os", "kernel"]}`)},
		{Key: "nopath", Origin: models.OriginSystem},
	}

	got := ActiveKeys(active, entries)
	if len(got) != 1 || !got["os"] {
		t.Errorf("ActiveKeys = %v, want only os", got)
	}

	if got := ActiveKeys(filepath.Join(tmpDir, "none.jsonc"), entries); len(got) != 0 {
		t.Errorf("missing active config should match nothing, got %v", got)
	}
}

func TestComputeDiff(t *testing.T) {
	tmpDir := t.TempDir()

	oldFile := filepath.Join(tmpDir, "old.jsonc")
	os.WriteFile(oldFile, []byte("line1\nline2\nline3\n"), 0644)

	newFile := filepath.Join(tmpDir, "new.jsonc")
	os.WriteFile(newFile, []byte("line1\nmodified\nline3\nline4\n"), 0644)

	result, err := ComputeDiff(oldFile, newFile)
	if err != nil {
		t.Fatalf("ComputeDiff failed: %v", err)
	}

	if result.Identical {
		t.Error("Files should not be identical")
	}
	if result.LinesAdded != 2 || result.LinesRemoved != 1 {
		t.Errorf("expected +2 -1, got +%d -%d", result.LinesAdded, result.LinesRemoved)
	}
	if result.Summary() != "+2 -1" {
		t.Errorf("Summary = %s", result.Summary())
	}
	if len(result.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(result.Hunks))
	}
	if result.Hunks[0].StartOld != 1 || result.Hunks[0].StartNew != 1 {
		t.Errorf("unexpected hunk start: %+v", result.Hunks[0])
	}
}

func TestComputeDiff_Identical(t *testing.T) {
	tmpDir := t.TempDir()

	file1 := filepath.Join(tmpDir, "file1.jsonc")
	file2 := filepath.Join(tmpDir, "file2.jsonc")
	os.WriteFile(file1, []byte("same content\n"), 0644)
	os.WriteFile(file2, []byte("same content\n"), 0644)

	result, err := ComputeDiff(file1, file2)
	if err != nil {
		t.Fatalf("ComputeDiff failed: %v", err)
	}

	if !result.Identical || result.HasChanges() {
		t.Error("Files should be identical")
	}
	if result.Summary() != "No changes" {
		t.Errorf("Summary = %s", result.Summary())
	}
}

func TestComputeDiff_MissingOld(t *testing.T) {
	tmpDir := t.TempDir()

	newFile := filepath.Join(tmpDir, "new.jsonc")
	os.WriteFile(newFile, []byte("a\nb\n"), 0644)

	result, err := ComputeDiff(filepath.Join(tmpDir, "absent.jsonc"), newFile)
	if err != nil {
		t.Fatalf("ComputeDiff failed: %v", err)
	}
	if result.OldExists {
		t.Error("OldExists should be false")
	}
	if result.LinesAdded != 2 || result.LinesRemoved != 0 {
		t.Errorf("expected +2, got +%d -%d", result.LinesAdded, result.LinesRemoved)
	}
}

func TestDiffTextContext(t *testing.T) {
	var oldLines, newLines []string
	for i := 1; i <= 20; i++ {
		line := "line" + string(rune('a'+i))
		oldLines = append(oldLines, line)
		if i == 10 {
			line = "changed"
		}
		newLines = append(newLines, line)
	}

	result := groupHunks(DiffText(strings.Join(oldLines, "\n"), strings.Join(newLines, "\n")))
	if len(result) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(result))
	}

	// 3 context + 1 delete + 1 insert + 3 context
	if n := len(result[0].DiffLines); n != 8 {
		t.Errorf("expected 8 lines in hunk, got %d", n)
	}
	if result[0].StartOld != 7 {
		t.Errorf("StartOld = %d, want 7", result[0].StartOld)
	}
}

func TestFormatUnifiedDiff(t *testing.T) {
	result := &DiffResult{
		OldPath: "a",
		NewPath: "b",
		Hunks: []DiffHunk{{
			StartOld: 1,
			StartNew: 1,
			DiffLines: []DiffLine{
				{Type: DiffEqual, Content: "same"},
				{Type: DiffDelete, Content: "old"},
				{Type: DiffInsert, Content: "new"},
			},
		}},
	}

	want := "--- a\n+++ b\n@@ -1 +1 @@\n same\n-old\n+new\n"
	if got := FormatUnifiedDiff(result); got != want {
		t.Errorf("FormatUnifiedDiff =\n%s\nwant\n%s", got, want)
	}
}
