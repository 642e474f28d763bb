// Package ui holds the terminal styles and renderers shared by commands and
// interactive views.
package ui

import (
	"ftm/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	Foreground = lipgloss.Color("#F9FAFB") // Light
	Border     = lipgloss.Color("#374151") // Border gray
	Highlight  = lipgloss.Color("#8B5CF6") // Light purple
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Foreground)

	// Panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			Padding(0, 1)

	// Help bar
	HelpBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Origins
	SystemStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	ExampleStyle = lipgloss.NewStyle().
			Foreground(Warning)

	UserStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ActiveStyle = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	FilePathStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Diff lines
	DiffAddStyle = lipgloss.NewStyle().
			Foreground(Success)

	DiffDeleteStyle = lipgloss.NewStyle().
			Foreground(Error)

	DiffHunkStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	// Notification/Toast styles
	SuccessNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#10B981")).
				Bold(true)

	ErrorNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FCA5A5")).
				Bold(true)

	WarningNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FCD34D")).
				Bold(true)

	InfoNotifyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#93C5FD")).
			Bold(true)
)

// ActiveMarker flags the theme matching the active configuration
const ActiveMarker = "★"

// OriginStyle returns the style for an origin
func OriginStyle(o models.Origin) lipgloss.Style {
	switch o {
	case models.OriginUser:
		return UserStyle
	case models.OriginExample:
		return ExampleStyle
	default:
		return SystemStyle
	}
}

// RenderOrigin renders an origin with its icon
func RenderOrigin(o models.Origin) string {
	return OriginStyle(o).Render(o.Icon() + " " + o.String())
}

// RenderHelpItem renders a help key-description pair
func RenderHelpItem(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

// RenderNotification renders a styled notification message
func RenderNotification(msgType string, message string) string {
	var icon string
	var style lipgloss.Style

	switch msgType {
	case "success":
		icon = "✓"
		style = SuccessNotifyStyle
	case "error":
		icon = "✗"
		style = ErrorNotifyStyle
	case "warning":
		icon = "⚠"
		style = WarningNotifyStyle
	case "info":
		icon = "ℹ"
		style = InfoNotifyStyle
	default:
		icon = "•"
		style = MutedStyle
	}

	return style.Render(icon + " " + message)
}
