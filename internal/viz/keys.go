package viz

import "github.com/charmbracelet/bubbles/key"

type playerKeys struct {
	Toggle   key.Binding
	Forward  key.Binding
	Backward key.Binding
	Reset    key.Binding
	Start    key.Binding
	End      key.Binding
	Seek     key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Theme    key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func newPlayerKeys() playerKeys {
	return playerKeys{
		Toggle:   key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Forward:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "step")),
		Backward: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Start:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first frame")),
		End:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last frame")),
		Seek:     key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "jump")),
		Faster:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k playerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Forward, k.Backward, k.Faster, k.Slower, k.Help, k.Quit}
}

func (k playerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Forward, k.Backward, k.Reset},
		{k.Start, k.End, k.Seek},
		{k.Faster, k.Slower, k.Theme},
		{k.Help, k.Back, k.Quit},
	}
}

type menuKeys struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Theme key.Binding
	Quit  key.Binding
}

func newMenuKeys() menuKeys {
	return menuKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Theme, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
