package card

import "github.com/charmbracelet/lipgloss"

// styles groups the lipgloss styles of a card.
type styles struct {
	noColor bool

	frame       lipgloss.Style
	badge       lipgloss.Style
	hintButton  lipgloss.Style
	id          lipgloss.Style
	audio       lipgloss.Style
	hintPanel   lipgloss.Style
	hintValue   lipgloss.Style
	hintNote    lipgloss.Style
	prompt      lipgloss.Style
	options     map[OptionState]lipgloss.Style
	fieldRight  lipgloss.Style
	fieldWrong  lipgloss.Style
	submit      lipgloss.Style
	shortcut    lipgloss.Style
	headRight   lipgloss.Style
	headWrong   lipgloss.Style
	answer      lipgloss.Style
	explanation lipgloss.Style
	errorLine   lipgloss.Style
}

// newStyles builds the palette; noColor yields unstyled text.
func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			noColor:     true,
			frame:       plain,
			badge:       plain,
			hintButton:  plain,
			id:          plain,
			audio:       plain,
			hintPanel:   plain,
			hintValue:   plain,
			hintNote:    plain,
			prompt:      plain,
			options:     map[OptionState]lipgloss.Style{},
			fieldRight:  plain,
			fieldWrong:  plain,
			submit:      plain,
			shortcut:    plain,
			headRight:   plain,
			headWrong:   plain,
			answer:      plain,
			explanation: plain,
			errorLine:   plain,
		}
	}
	emerald := lipgloss.Color("42")
	rose := lipgloss.Color("203")
	indigo := lipgloss.Color("63")
	amber := lipgloss.Color("214")
	slate := lipgloss.Color("245")
	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		badge:      lipgloss.NewStyle().Bold(true).Foreground(indigo),
		hintButton: lipgloss.NewStyle().Bold(true).Foreground(amber),
		id:         lipgloss.NewStyle().Foreground(slate),
		audio:      lipgloss.NewStyle().Foreground(indigo),
		hintPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(amber).
			PaddingLeft(1),
		hintValue: lipgloss.NewStyle().Bold(true).Foreground(indigo),
		hintNote:  lipgloss.NewStyle().Italic(true).Foreground(amber),
		prompt:    lipgloss.NewStyle().Bold(true).Italic(true),
		options: map[OptionState]lipgloss.Style{
			OptionIdle:      lipgloss.NewStyle(),
			OptionFocused:   lipgloss.NewStyle().Bold(true).Foreground(indigo),
			OptionCorrect:   lipgloss.NewStyle().Bold(true).Foreground(emerald),
			OptionIncorrect: lipgloss.NewStyle().Foreground(rose),
			OptionMuted:     lipgloss.NewStyle().Faint(true),
		},
		fieldRight:  lipgloss.NewStyle().Bold(true).Foreground(emerald),
		fieldWrong:  lipgloss.NewStyle().Bold(true).Foreground(rose),
		submit:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(indigo).Padding(0, 1),
		shortcut:    lipgloss.NewStyle().Faint(true),
		headRight:   lipgloss.NewStyle().Bold(true).Foreground(emerald),
		headWrong:   lipgloss.NewStyle().Bold(true).Foreground(rose),
		answer:      lipgloss.NewStyle().Bold(true).Underline(true).Foreground(rose),
		explanation: lipgloss.NewStyle().Italic(true).Foreground(slate),
		errorLine:   lipgloss.NewStyle().Foreground(rose),
	}
}

// option returns the style for an option state.
func (s styles) option(state OptionState) lipgloss.Style {
	if style, ok := s.options[state]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
