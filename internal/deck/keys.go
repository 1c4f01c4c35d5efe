package deck

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the deck's navigation bindings.
type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "pgdown"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "pgup"),
			key.WithHelp("shift+tab", "previous"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}
