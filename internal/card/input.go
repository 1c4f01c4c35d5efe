package card

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quizcard/internal/question"
)

// Update routes key presses to hint, audio, option, or draft handling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case AudioMsg:
		if typed.QuestionID == m.props.Question.ID {
			m.audioErr = ""
			if typed.Err != nil {
				m.audioErr = typed.Err.Error()
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	if m.acceptsText() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.PlayAudio) {
		return m, m.PlayAudio()
	}
	if key.Matches(msg, m.keys.ToggleHint) {
		return m.ToggleHint(), nil
	}
	if m.props.IsAnswered {
		return m, nil
	}
	if m.props.Question.Type.UsesOptions() {
		return m.handleOptionKey(msg)
	}
	if key.Matches(msg, m.keys.Submit) {
		return m.Submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleOptionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	options := m.props.Question.Options
	switch {
	case key.Matches(msg, optionHintKey):
		return m.ToggleHint(), nil
	case key.Matches(msg, m.keys.Up):
		switch {
		case m.cursor == noCursor:
			m.cursor = 0
		case m.cursor > 0:
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(options)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.Submit()
	}
	if index, ok := optionIndexForKey(msg); ok && index < len(options) {
		m.cursor = index
		return m.SelectOption(index)
	}
	return m, nil
}

// optionIndexForKey maps "1".."9" and "a".."z" to option indexes.
func optionIndexForKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	switch {
	case r >= '1' && r <= '9':
		return int(r - '1'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	}
	return 0, false
}

// SelectOption answers an option question with the option at index. It does
// nothing once answered, for free-text questions, or for an unknown index.
func (m Model) SelectOption(index int) (Model, tea.Cmd) {
	if m.props.IsAnswered || !m.props.Question.Type.UsesOptions() {
		return m, nil
	}
	options := m.props.Question.Options
	if index < 0 || index >= len(options) {
		return m, nil
	}
	return m.emit(options[index])
}

// Submit commits the trimmed draft of a free-text question, or the option
// under the cursor of an option question. Empty drafts, answered questions,
// and option questions with no focused option are ignored.
func (m Model) Submit() (Model, tea.Cmd) {
	if m.props.IsAnswered {
		return m, nil
	}
	if m.props.Question.Type.UsesOptions() {
		return m.SelectOption(m.cursor)
	}
	response := strings.TrimSpace(m.input.Value())
	if response == "" {
		return m, nil
	}
	return m.emit(response)
}

// emit returns the AnswerMsg command. A response identical to the last one
// emitted for this question is not sent again while the parent has yet to
// mark the question answered.
func (m Model) emit(response string) (Model, tea.Cmd) {
	if response == "" || response == m.lastEmitted {
		return m, nil
	}
	m.lastEmitted = response
	msg := AnswerMsg{QuestionID: m.props.Question.ID, Response: response}
	return m, func() tea.Msg { return msg }
}

// SetDraft replaces the free-text draft. It does nothing once answered.
func (m Model) SetDraft(text string) Model {
	if !m.acceptsText() {
		return m
	}
	m.input.SetValue(text)
	return m
}

// Draft returns the untrimmed free-text draft.
func (m Model) Draft() string {
	return m.input.Value()
}

// FieldValue is what the free-text field shows: the recorded response once
// answered, the draft before.
func (m Model) FieldValue() string {
	if m.props.IsAnswered && m.props.UserAnswer != "" {
		return m.props.UserAnswer
	}
	return m.input.Value()
}

// Cursor returns the highlighted option index, or -1 before any option
// has been focused.
func (m Model) Cursor() int {
	return m.cursor
}

// OptionStates returns the drawing state of every option.
func (m Model) OptionStates() []OptionState {
	q := m.props.Question
	states := make([]OptionState, len(q.Options))
	for i, option := range q.Options {
		states[i] = m.optionState(i, option)
	}
	return states
}

func (m Model) optionState(index int, option string) OptionState {
	if !m.props.IsAnswered {
		if index == m.cursor {
			return OptionFocused
		}
		return OptionIdle
	}
	q := m.props.Question
	switch {
	case question.IsCorrectOption(q, option):
		return OptionCorrect
	case option == m.props.UserAnswer:
		return OptionIncorrect
	default:
		return OptionMuted
	}
}

// acceptsText reports whether the draft input takes keystrokes.
func (m Model) acceptsText() bool {
	return !m.props.IsAnswered && !m.props.Question.Type.UsesOptions()
}
