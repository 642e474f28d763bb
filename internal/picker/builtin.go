package picker

import (
	"context"
	"io"

	"ftm/internal/models"
	"ftm/internal/ui"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// themeItem implements list.Item for one entry
type themeItem struct {
	entry models.ThemeEntry
}

func (i themeItem) Title() string       { return i.entry.Origin.Icon() + " " + i.entry.Key }
func (i themeItem) Description() string { return i.entry.Path }
func (i themeItem) FilterValue() string { return i.entry.Key }

// FuzzyFilter ranks targets with sahilm/fuzzy, best match first
func FuzzyFilter(term string, targets []string) []list.Rank {
	matches := fuzzy.Find(term, targets)

	ranks := make([]list.Rank, len(matches))
	for i, m := range matches {
		ranks[i] = list.Rank{Index: m.Index, MatchedIndexes: m.MatchedIndexes}
	}
	return ranks
}

// listModel is the bubbletea model of the built-in picker
type listModel struct {
	list      list.Model
	chosen    *models.ThemeEntry
	cancelled bool
}

func newListModel(entries []models.ThemeEntry, width, height int) listModel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = themeItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Pick a theme"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Filter = FuzzyFilter
	l.Styles.Title = ui.PanelTitleStyle

	return listModel{list: l}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keys belong to the filter input while typing
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(themeItem); ok {
				e := item.entry
				m.chosen = &e
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listModel) View() string {
	if m.chosen != nil || m.cancelled {
		return ""
	}
	return m.list.View()
}

// Builtin is a bubbletea list picker used when fzf is not installed
type Builtin struct {
	input  io.Reader
	output io.Writer
}

// NewBuiltin creates a picker on the process terminal
func NewBuiltin() *Builtin {
	return &Builtin{}
}

// Pick runs the list until the user selects or cancels
func (b *Builtin) Pick(ctx context.Context, entries []models.ThemeEntry) (models.ThemeEntry, bool, error) {
	if len(entries) == 0 {
		return models.ThemeEntry{}, false, nil
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if b.input != nil {
		opts = append(opts, tea.WithInput(b.input))
	}
	if b.output != nil {
		opts = append(opts, tea.WithOutput(b.output))
	}

	final, err := tea.NewProgram(newListModel(entries, 60, 20), opts...).Run()
	if err != nil {
		return models.ThemeEntry{}, false, err
	}

	m := final.(listModel)
	if m.cancelled || m.chosen == nil {
		return models.ThemeEntry{}, false, nil
	}
	return *m.chosen, true, nil
}
