package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the toggle browser
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Set    key.Binding
	Up     key.Binding
	Down   key.Binding
	Source key.Binding // Switch between rendered output and file source
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("n/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("p/←", "prev"),
		),
		Set: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "set default"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Source: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view source"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in short help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Set, k.Quit}
}

// FullHelp returns all keybindings for full help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Set},
		{k.Up, k.Down, k.Source},
		{k.Help, k.Quit},
	}
}
