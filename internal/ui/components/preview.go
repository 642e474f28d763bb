// Package components holds the bubbletea models of the interactive views.
package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ftm/internal/ui"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// maxSourceSize caps the preset files shown as source
const maxSourceSize = 1024 * 1024

// Preview shows either the rendered output of a preset or its source in a
// scrollable viewport.
type Preview struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	Title      string
	Info       string
	TotalLines int

	Width  int
	Height int

	lineNumStyle lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewPreview creates a new Preview
func NewPreview() *Preview {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Preview{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		lineNumStyle: lipgloss.NewStyle().
			Foreground(ui.Muted).
			Width(4).
			Align(lipgloss.Right),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.Border).
			Padding(0, 1),
	}
}

// SetSize updates the viewport dimensions
func (p *Preview) SetSize(width, height int) {
	p.Width = width
	p.Height = height

	// Header (2 lines) and border (2 lines)
	p.viewport.Width = max(20, width-4)
	p.viewport.Height = max(5, height-4)
}

// SetRendered shows captured tool output
func (p *Preview) SetRendered(title, output string) {
	p.Title = title
	p.Info = "rendered"
	p.setContent(strings.TrimRight(output, "\n"))
}

// SetMessage shows a plain message, such as an error
func (p *Preview) SetMessage(title string, lines ...string) {
	p.Title = title
	p.Info = ""
	p.setContent(strings.Join(lines, "\n"))
}

// LoadSource shows a preset file with line numbers and highlighting
func (p *Preview) LoadSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxSourceSize {
		p.SetMessage(filepath.Base(path), "", "  File is too large to preview", "  Size: "+humanize.Bytes(uint64(info.Size())))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(p.highlighter.Highlight(string(data), path), "\n")
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(p.lineNumStyle.Render(fmt.Sprintf("%d", i+1)) + " │ " + line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	p.Title = filepath.Base(path)
	p.Info = humanize.Bytes(uint64(info.Size()))
	p.setContent(b.String())
	return nil
}

func (p *Preview) setContent(content string) {
	p.TotalLines = strings.Count(content, "\n") + 1
	p.viewport.SetContent(content)
	p.viewport.GotoTop()
}

// Update handles messages for viewport scrolling
func (p *Preview) Update(msg tea.Msg) (*Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// ScrollUp scrolls up one line
func (p *Preview) ScrollUp() {
	p.viewport.LineUp(1)
}

// ScrollDown scrolls down one line
func (p *Preview) ScrollDown() {
	p.viewport.LineDown(1)
}

// View renders the preview
func (p *Preview) View() string {
	var b strings.Builder

	header := ui.TitleStyle.Render(p.Title)
	if p.Info != "" {
		header += ui.MutedStyle.Render("  " + p.Info)
	}
	if p.TotalLines > p.viewport.Height {
		header += ui.MutedStyle.Render(fmt.Sprintf("  %.0f%%", p.viewport.ScrollPercent()*100))
	}
	b.WriteString(header + "\n")
	b.WriteString(ui.MutedStyle.Render(strings.Repeat("─", max(0, p.Width-4))) + "\n")
	b.WriteString(p.viewport.View())

	return p.borderStyle.Width(p.Width).Render(b.String())
}
