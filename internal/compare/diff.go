package compare

import (
	"os"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines kept around each change
const contextLines = 3

// DiffType represents the type of diff operation
type DiffType int

const (
	DiffEqual DiffType = iota
	DiffInsert
	DiffDelete
)

// DiffLine represents a single line in the diff
type DiffLine struct {
	Type    DiffType
	Content string
	OldNum  int // Line in the old file, 0 for inserts
	NewNum  int // Line in the new file, 0 for deletes
}

// DiffHunk represents a group of changes with surrounding context
type DiffHunk struct {
	StartOld  int
	StartNew  int
	DiffLines []DiffLine
}

// DiffResult contains the complete diff between two files
type DiffResult struct {
	OldPath      string
	NewPath      string
	OldExists    bool
	NewExists    bool
	Identical    bool
	Hunks        []DiffHunk
	LinesAdded   int
	LinesRemoved int
}

// ComputeDiff computes a line diff between two files. A missing file is
// treated as empty.
func ComputeDiff(oldPath, newPath string) (*DiffResult, error) {
	result := &DiffResult{
		OldPath: oldPath,
		NewPath: newPath,
	}

	oldContent, oldErr := os.ReadFile(oldPath)
	if oldErr != nil && !os.IsNotExist(oldErr) {
		return nil, oldErr
	}
	result.OldExists = oldErr == nil

	newContent, newErr := os.ReadFile(newPath)
	if newErr != nil && !os.IsNotExist(newErr) {
		return nil, newErr
	}
	result.NewExists = newErr == nil

	lines := DiffText(string(oldContent), string(newContent))
	for _, l := range lines {
		switch l.Type {
		case DiffInsert:
			result.LinesAdded++
		case DiffDelete:
			result.LinesRemoved++
		}
	}

	result.Identical = result.LinesAdded == 0 && result.LinesRemoved == 0
	if !result.Identical {
		result.Hunks = groupHunks(lines)
	}
	return result, nil
}

// DiffText returns the line-level diff of two texts using line mode
func DiffText(oldText, newText string) []DiffLine {
	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []DiffLine
	oldNum, newNum := 1, 1
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		for _, content := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			line := DiffLine{Content: content}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				line.Type = DiffEqual
				line.OldNum, line.NewNum = oldNum, newNum
				oldNum++
				newNum++
			case diffmatchpatch.DiffDelete:
				line.Type = DiffDelete
				line.OldNum = oldNum
				oldNum++
			case diffmatchpatch.DiffInsert:
				line.Type = DiffInsert
				line.NewNum = newNum
				newNum++
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// groupHunks keeps changed lines plus contextLines of context around them
func groupHunks(lines []DiffLine) []DiffHunk {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Type == DiffEqual {
			continue
		}
		for j := max(0, i-contextLines); j <= min(len(lines)-1, i+contextLines); j++ {
			keep[j] = true
		}
	}

	var hunks []DiffHunk
	var current *DiffHunk
	for i, l := range lines {
		if !keep[i] {
			if current != nil {
				hunks = append(hunks, *current)
				current = nil
			}
			continue
		}
		if current == nil {
			current = &DiffHunk{StartOld: l.OldNum, StartNew: l.NewNum}
		}
		if current.StartOld == 0 {
			current.StartOld = l.OldNum
		}
		if current.StartNew == 0 {
			current.StartNew = l.NewNum
		}
		current.DiffLines = append(current.DiffLines, l)
	}
	if current != nil {
		hunks = append(hunks, *current)
	}
	return hunks
}

// FormatUnifiedDiff formats the diff result as unified diff
func FormatUnifiedDiff(result *DiffResult) string {
	var sb strings.Builder

	sb.WriteString("--- " + result.OldPath + "\n")
	sb.WriteString("+++ " + result.NewPath + "\n")

	for _, hunk := range result.Hunks {
		sb.WriteString("@@ -" + strconv.Itoa(hunk.StartOld) + " +" + strconv.Itoa(hunk.StartNew) + " @@\n")
		for _, line := range hunk.DiffLines {
			switch line.Type {
			case DiffEqual:
				sb.WriteString(" " + line.Content + "\n")
			case DiffInsert:
				sb.WriteString("+" + line.Content + "\n")
			case DiffDelete:
				sb.WriteString("-" + line.Content + "\n")
			}
		}
	}

	return sb.String()
}

// HasChanges returns true if there are any changes
func (d *DiffResult) HasChanges() bool {
	return !d.Identical
}

// Summary returns a brief summary of changes
func (d *DiffResult) Summary() string {
	if d.Identical {
		return "No changes"
	}

	var parts []string
	if d.LinesAdded > 0 {
		parts = append(parts, "+"+strconv.Itoa(d.LinesAdded))
	}
	if d.LinesRemoved > 0 {
		parts = append(parts, "-"+strconv.Itoa(d.LinesRemoved))
	}
	return strings.Join(parts, " ")
}
