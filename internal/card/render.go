package card

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizcard/internal/question"
)

// View renders the card.
func (m Model) View() string {
	sections := []string{m.renderHeader()}
	if audio := m.renderAudio(); audio != "" {
		sections = append(sections, audio)
	}
	if m.HintShown() {
		sections = append(sections, m.renderHint())
	}
	sections = append(sections, "", m.styles.prompt.Render(quote(m.props.Question.Text)), "")
	if m.props.Question.Type.UsesOptions() {
		sections = append(sections, m.renderOptions())
	} else {
		sections = append(sections, m.renderField())
	}
	if m.props.IsAnswered {
		sections = append(sections, "", m.renderFeedback())
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	frame := m.styles.frame
	if !m.styles.noColor && m.width > 4 {
		frame = frame.Width(m.width - 2)
	}
	return frame.Render(body)
}

// renderHeader renders the type badge, hint toggle, and question id.
func (m Model) renderHeader() string {
	q := m.props.Question
	line := m.styles.badge.Render("[" + q.Type.Label() + "]")
	if !m.props.IsAnswered {
		label := m.messages.ShowHint
		if m.hintVisible {
			label = m.messages.HideHint
		}
		line += "  " + m.styles.hintButton.Render("["+m.keys.ToggleHint.Help().Key+" "+label+"]")
	}
	return line + "  " + m.styles.id.Render("#"+q.ID)
}

// renderAudio renders the audio reference line.
func (m Model) renderAudio() string {
	q := m.props.Question
	if !q.HasAudio() {
		return ""
	}
	line := "♪ " + m.messages.Audio + ": " + q.AudioURL
	if m.player != nil {
		line += " (" + m.keys.PlayAudio.Help().Key + ")"
	}
	line = m.styles.audio.Render(line)
	if m.audioErr != "" {
		line += "\n" + m.styles.errorLine.Render(m.messages.AudioUnavailable+": "+m.audioErr)
	}
	return line
}

// renderHint renders the cached hint payload.
func (m Model) renderHint() string {
	h, ok := m.Hint()
	if !ok {
		return ""
	}
	lines := make([]string, 0, 3)
	if h.Length > 0 {
		lines = append(lines, m.messages.LengthLabel+" "+m.styles.hintValue.Render(strconv.Itoa(h.Length)+" "+m.messages.LengthUnit))
	}
	if h.FirstChar != "" {
		lines = append(lines, m.messages.FirstCharLabel+" "+m.styles.hintValue.Render(quote(h.FirstChar)))
	}
	if h.Text != "" {
		lines = append(lines, m.styles.hintNote.Render("ℹ "+h.Text))
	}
	return m.styles.hintPanel.Render(strings.Join(lines, "\n"))
}

// renderOptions renders lettered options with their state markers.
func (m Model) renderOptions() string {
	states := m.OptionStates()
	lines := make([]string, 0, len(states))
	for i, option := range m.props.Question.Options {
		state := states[i]
		line := optionMarker(state) + " " + optionLetter(i) + ". " + option
		lines = append(lines, m.styles.option(state).Render(line))
	}
	return strings.Join(lines, "\n")
}

// renderField renders the free-text input or the recorded response.
func (m Model) renderField() string {
	switch m.Verdict() {
	case question.AnsweredCorrect:
		return m.styles.fieldRight.Render("✓ " + m.FieldValue())
	case question.AnsweredIncorrect:
		return m.styles.fieldWrong.Render("✗ " + m.FieldValue())
	}
	input := m.input.View() + "  " + m.styles.submit.Render("["+m.messages.Submit+"]")
	return input + "\n" + m.styles.shortcut.Render(m.messages.SubmitShortcut)
}

// renderFeedback renders the verdict headline, correction, and explanation.
func (m Model) renderFeedback() string {
	q := m.props.Question
	if m.Verdict() == question.AnsweredCorrect {
		lines := []string{m.styles.headRight.Render("✓ " + m.messages.Correct)}
		if q.Explanation != "" {
			lines = append(lines, m.styles.explanation.Render(quote(q.Explanation)))
		}
		return strings.Join(lines, "\n")
	}
	lines := []string{
		m.styles.headWrong.Render("✗ " + m.messages.Incorrect),
		m.messages.CorrectAnswerIs + " " + m.styles.answer.Render(strings.ToUpper(q.CorrectAnswer)),
	}
	if q.Explanation != "" {
		lines = append(lines, m.styles.explanation.Render(quote(q.Explanation)))
	}
	return strings.Join(lines, "\n")
}

// optionMarker returns the leading marker for an option state.
func optionMarker(state OptionState) string {
	switch state {
	case OptionFocused:
		return "›"
	case OptionCorrect:
		return "✓"
	case OptionIncorrect:
		return "✗"
	case OptionMuted:
		return "·"
	default:
		return " "
	}
}

// optionLetter returns A, B, C... for an option index.
func optionLetter(index int) string {
	if index < 26 {
		return string(rune('A' + index))
	}
	return strconv.Itoa(index + 1)
}

// quote wraps text in double quotes.
func quote(text string) string {
	return "\"" + text + "\""
}
