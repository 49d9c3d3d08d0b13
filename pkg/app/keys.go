package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the page's key bindings.
type KeyMap struct {
	Down        key.Binding
	Up          key.Binding
	PageDown    key.Binding
	PageUp      key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Section     key.Binding // 1-6 jump to a section
	NextSection key.Binding
	PrevSection key.Binding
	Theme       key.Binding
	NextCard    key.Binding
	PrevCard    key.Binding
	Category    key.Binding
	Filter      key.Binding
	Toolkit     key.Binding
	Dock        key.Binding
	Bell        key.Binding
	Help        key.Binding
	Close       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", " ", "ctrl+d"), key.WithHelp("pgdn/space", "page down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Section:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump to section")),
		NextSection: key.NewBinding(key.WithKeys("n", "tab"), key.WithHelp("n", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("N", "shift+tab"), key.WithHelp("N", "previous section")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		NextCard:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next card")),
		PrevCard:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "previous card")),
		Category:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "experience category")),
		Filter:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "project filter")),
		Toolkit:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "toolkit")),
		Dock:        key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "move toolkit")),
		Bell:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "audio")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextSection, k.Theme, k.NextCard, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom},
		{k.Section, k.NextSection, k.PrevSection, k.Theme},
		{k.NextCard, k.PrevCard, k.Category, k.Filter},
		{k.Toolkit, k.Dock, k.Bell, k.Help, k.Close, k.Quit},
	}
}
