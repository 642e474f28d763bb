package ui

import (
	"fmt"
	"strings"

	"ftm/internal/compare"
)

// RenderDiff renders a diff with colored hunks
func RenderDiff(result *compare.DiffResult) string {
	var sb strings.Builder

	sb.WriteString(DiffDeleteStyle.Render("--- "+result.OldPath) + "\n")
	sb.WriteString(DiffAddStyle.Render("+++ "+result.NewPath) + "\n")

	for _, hunk := range result.Hunks {
		sb.WriteString(DiffHunkStyle.Render(fmt.Sprintf("@@ -%d +%d @@", hunk.StartOld, hunk.StartNew)) + "\n")
		for _, line := range hunk.DiffLines {
			switch line.Type {
			case compare.DiffInsert:
				sb.WriteString(DiffAddStyle.Render("+"+line.Content) + "\n")
			case compare.DiffDelete:
				sb.WriteString(DiffDeleteStyle.Render("-"+line.Content) + "\n")
			default:
				sb.WriteString(" " + line.Content + "\n")
			}
		}
	}

	return sb.String()
}
