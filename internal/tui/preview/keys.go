package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Focus  key.Binding
	Blur   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit field")),
		Blur:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave field")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Focus, k.Blur, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
