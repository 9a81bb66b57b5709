package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Toggle    key.Binding
	Pause     key.Binding
	NextCtl   key.Binding
	PrevCtl   key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
		Pause:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		NextCtl:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		PrevCtl:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev control")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// gameKeys is the key map shown under a game.
type gameKeys struct {
	keyMap
	extra []key.Binding
}

func (k gameKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Toggle, k.NextCtl, k.Left, k.Right, k.Help, k.Back}, k.extra...)
}

func (k gameKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Pause, k.Help, k.Back},
		{k.NextCtl, k.PrevCtl, k.Left, k.Right},
		k.extra,
	}
}

// menuKeys is the key map shown on the menu.
type menuKeys struct {
	keyMap
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
