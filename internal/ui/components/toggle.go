package components

import (
	"context"
	"fmt"

	"ftm/internal/models"
	"ftm/internal/ui"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Renderer captures the rendered output of a preset
type Renderer interface {
	Capture(ctx context.Context, config string) (string, error)
}

// ApplyFunc makes an entry the default and returns a status line
type ApplyFunc func(ctx context.Context, entry models.ThemeEntry) (string, error)

// renderedMsg carries the captured output for one entry
type renderedMsg struct {
	index  int
	output string
	err    error
}

// appliedMsg reports the result of a set action
type appliedMsg struct {
	status string
	err    error
}

// Toggle cycles through themes showing each one's rendered output
type Toggle struct {
	ctx      context.Context
	entries  []models.ThemeEntry
	index    int
	renderer Renderer
	apply    ApplyFunc

	preview    *Preview
	keys       ui.KeyMap
	help       help.Model
	cache      map[int]string
	showSource bool
	status     string
	statusKind string
	width      int
	height     int
	quitting   bool
}

// NewToggle creates a toggle browser over entries
func NewToggle(ctx context.Context, entries []models.ThemeEntry, renderer Renderer, apply ApplyFunc) *Toggle {
	return &Toggle{
		ctx:      ctx,
		entries:  entries,
		renderer: renderer,
		apply:    apply,
		preview:  NewPreview(),
		keys:     ui.DefaultKeyMap(),
		help:     help.New(),
		cache:    make(map[int]string),
	}
}

// Current returns the entry on screen
func (m *Toggle) Current() models.ThemeEntry {
	return m.entries[m.index]
}

// Init renders the first entry
func (m *Toggle) Init() tea.Cmd {
	if len(m.entries) == 0 {
		return tea.Quit
	}
	return m.show()
}

// Update handles keys and async results
func (m *Toggle) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.preview.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case renderedMsg:
		if msg.err == nil {
			m.cache[msg.index] = msg.output
		}
		if msg.index == m.index && !m.showSource {
			m.fillPreview(msg.output, msg.err)
		}
		return m, nil

	case appliedMsg:
		if msg.err != nil {
			m.status, m.statusKind = msg.err.Error(), "error"
		} else {
			m.status, m.statusKind = msg.status, "success"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.index = (m.index + 1) % len(m.entries)
			m.status = ""
			return m, m.show()
		case key.Matches(msg, m.keys.Prev):
			m.index = (m.index - 1 + len(m.entries)) % len(m.entries)
			m.status = ""
			return m, m.show()
		case key.Matches(msg, m.keys.Set):
			if m.apply == nil {
				return m, nil
			}
			entry := m.Current()
			m.status, m.statusKind = "applying "+entry.Key+"...", "info"
			return m, func() tea.Msg {
				status, err := m.apply(m.ctx, entry)
				return appliedMsg{status: status, err: err}
			}
		case key.Matches(msg, m.keys.Source):
			m.showSource = !m.showSource
			return m, m.show()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.preview.ScrollUp()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.preview.ScrollDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// show fills the preview for the current entry, rendering it if needed
func (m *Toggle) show() tea.Cmd {
	entry := m.Current()

	if m.showSource {
		if err := m.preview.LoadSource(entry.Path); err != nil {
			m.preview.SetMessage(entry.Key, "", "  "+err.Error())
		}
		return nil
	}

	if out, ok := m.cache[m.index]; ok {
		m.fillPreview(out, nil)
		return nil
	}

	m.preview.SetMessage(entry.Key, "", "  rendering...")
	index := m.index
	return func() tea.Msg {
		out, err := m.renderer.Capture(m.ctx, entry.Path)
		return renderedMsg{index: index, output: out, err: err}
	}
}

func (m *Toggle) fillPreview(output string, err error) {
	entry := m.Current()
	if err != nil {
		m.preview.SetMessage(entry.Key, "", "  fastfetch failed: "+err.Error())
		return
	}
	m.preview.SetRendered(entry.Key, output)
}

// View renders the browser
func (m *Toggle) View() string {
	if m.quitting || len(m.entries) == 0 {
		return ""
	}

	entry := m.Current()
	header := ui.HeaderStyle.Render("Toggle themes") + "  " +
		ui.TitleStyle.Render(entry.Key) + "  " +
		ui.RenderOrigin(entry.Origin) +
		ui.MutedStyle.Render(fmt.Sprintf("  %d/%d", m.index+1, len(m.entries)))

	view := header + "\n" + m.preview.View() + "\n"
	if m.status != "" {
		view += ui.RenderNotification(m.statusKind, m.status) + "\n"
	}
	return view + ui.HelpBarStyle.Render(m.help.View(m.keys))
}

// RunToggle runs the toggle browser until the user quits
func RunToggle(ctx context.Context, entries []models.ThemeEntry, renderer Renderer, apply ApplyFunc) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := tea.NewProgram(NewToggle(ctx, entries, renderer, apply), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
