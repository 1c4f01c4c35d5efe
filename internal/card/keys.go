package card

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the card's key bindings.
type KeyMap struct {
	Submit     key.Binding
	ToggleHint key.Binding
	PlayAudio  key.Binding
	Up         key.Binding
	Down       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		ToggleHint: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "hint"),
		),
		PlayAudio: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "play audio"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
	}
}

// optionHintKey toggles the hint on option questions, where "?" cannot be
// part of a typed answer.
var optionHintKey = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hint"))

// ShortHelp returns the bindings that apply to the card's current state.
func (m Model) ShortHelp() []key.Binding {
	bindings := []key.Binding{}
	if m.props.IsAnswered {
		if m.player != nil && m.props.Question.HasAudio() {
			bindings = append(bindings, m.keys.PlayAudio)
		}
		return bindings
	}
	if m.props.Question.Type.UsesOptions() {
		bindings = append(bindings, m.keys.Up, m.keys.Down)
	}
	bindings = append(bindings, m.keys.Submit, m.keys.ToggleHint)
	if m.player != nil && m.props.Question.HasAudio() {
		bindings = append(bindings, m.keys.PlayAudio)
	}
	return bindings
}
