package ui

import (
	"strconv"

	"ftm/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderThemeTable renders entries as a numbered table. Keys in active get
// the active marker.
func RenderThemeTable(entries []models.ThemeEntry, active map[string]bool) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		marker := ""
		if active[e.Key] {
			marker = ActiveMarker
		}
		rows[i] = []string{strconv.Itoa(i), marker, e.Key, e.Origin.Icon() + " " + e.Origin.String(), e.Path}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Border)).
		Headers("#", "", "THEME", "ORIGIN", "PATH").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return cell.Inherit(HeaderStyle)
			}
			switch col {
			case 0:
				return cell.Inherit(MutedStyle)
			case 1:
				return cell.Inherit(ActiveStyle)
			case 3:
				if row >= 0 && row < len(entries) {
					return cell.Inherit(OriginStyle(entries[row].Origin))
				}
			case 4:
				return cell.Inherit(FilePathStyle)
			}
			return cell
		})

	return t.Render()
}
