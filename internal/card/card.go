// Package card renders a single quiz question as a Bubble Tea component.
//
// A card is a function of its Props plus transient UI state: the free-text
// draft, the option cursor, and hint visibility. It reports responses by
// returning an AnswerMsg command and never records answers itself.
package card

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quizcard/internal/hint"
	"quizcard/internal/question"
)

// Options configures a card.
type Options struct {
	Messages Messages
	NoColor  bool
	Player   AudioPlayer
	// Hints overrides hint generation; nil uses Messages.Hints.
	Hints hint.Generator
	Keys  *KeyMap
	Width int
}

// noCursor marks an option question where no option has been focused yet.
const noCursor = -1

// Model is the Bubble Tea model for one question card.
type Model struct {
	props       Props
	input       textinput.Model
	cursor      int
	hintVisible bool
	hints       hint.Cache
	lastEmitted string
	player      AudioPlayer
	audioErr    string
	messages    Messages
	keys        KeyMap
	styles      styles
	width       int
}

// New constructs a card showing props.
func New(props Props, opts Options) Model {
	messages := opts.Messages
	if messages.Submit == "" {
		messages = English
	}
	generate := opts.Hints
	if generate == nil {
		generate = hint.NewGenerator(messages.Hints)
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	input := textinput.New()
	input.Placeholder = messages.Placeholder
	input.Prompt = "› "
	input.CharLimit = 256
	m := Model{
		input:    input,
		cursor:   noCursor,
		hints:    hint.NewCache(generate),
		player:   opts.Player,
		messages: messages,
		keys:     keys,
		styles:   newStyles(opts.NoColor),
		width:    opts.Width,
	}
	m.props = props
	m = m.syncInput()
	return m
}

// SetProps feeds new parent state into the card. A different question ID
// discards the draft, the cursor, hint visibility, and the cached hint.
func (m Model) SetProps(props Props) Model {
	if props.Question.ID != m.props.Question.ID {
		m.input.Reset()
		m.cursor = noCursor
		m.hintVisible = false
		m.hints.Reset(props.Question.ID)
		m.lastEmitted = ""
		m.audioErr = ""
	}
	m.props = props
	return m.syncInput()
}

// syncInput focuses the draft input only while a free-text question is open.
func (m Model) syncInput() Model {
	if m.acceptsText() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// Props returns the state last fed in by the parent.
func (m Model) Props() Props {
	return m.props
}

// Question returns the question on display.
func (m Model) Question() question.Question {
	return m.props.Question
}

// Verdict returns the presentation state derived from the parent's record.
func (m Model) Verdict() question.Verdict {
	return question.Judge(m.props.Question, m.props.IsAnswered, m.props.UserAnswer)
}

// SetWidth sets the rendering width; zero lets content decide.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// Init starts the input cursor blinking.
func (m Model) Init() tea.Cmd {
	if m.acceptsText() {
		return textinput.Blink
	}
	return nil
}

// ToggleHint flips hint visibility, generating the hint on first use. It does
// nothing once the question is answered.
func (m Model) ToggleHint() Model {
	if m.props.IsAnswered {
		return m
	}
	m.hints.Get(m.props.Question)
	m.hintVisible = !m.hintVisible
	return m
}

// HintShown reports whether the hint panel is currently drawn.
func (m Model) HintShown() bool {
	return m.hintVisible && !m.props.IsAnswered
}

// Hint returns the cached hint for the current question, if generated.
func (m Model) Hint() (hint.Hint, bool) {
	return m.hints.Peek(m.props.Question.ID)
}
