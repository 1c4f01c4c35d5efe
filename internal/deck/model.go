// Package deck hosts question cards: it owns the question list and the
// answer record, commits responses emitted by the card, and feeds the
// committed state back down.
package deck

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizcard/internal/card"
	"quizcard/internal/logging"
	"quizcard/internal/question"
)

// Options configures a deck.
type Options struct {
	Title    string
	NoColor  bool
	Messages card.Messages
	Player   card.AudioPlayer
	Logger   *slog.Logger
	Book     *AnswerBook
}

// Model is the Bubble Tea host model.
type Model struct {
	title     string
	questions []question.Question
	index     int
	book      *AnswerBook
	card      card.Model
	help      help.Model
	keys      keyMap
	logger    *slog.Logger
	noColor   bool
	quitting  bool
}

// New constructs a deck showing the first question.
func New(questions []question.Question, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	book := opts.Book
	if book == nil {
		book = NewAnswerBook()
	}
	m := Model{
		title:     opts.Title,
		questions: questions,
		book:      book,
		help:      help.New(),
		keys:      defaultKeyMap(),
		logger:    logger,
		noColor:   opts.NoColor,
	}
	m.card = card.New(m.propsFor(0), card.Options{
		Messages: opts.Messages,
		NoColor:  opts.NoColor,
		Player:   opts.Player,
	})
	return m
}

// propsFor builds card props for a question index from the answer book.
func (m Model) propsFor(index int) card.Props {
	if index < 0 || index >= len(m.questions) {
		return card.Props{}
	}
	q := m.questions[index]
	response, answered := m.book.Response(q.ID)
	return card.Props{Question: q, IsAnswered: answered, UserAnswer: response}
}

// Init starts the card.
func (m Model) Init() tea.Cmd {
	return m.card.Init()
}

// Update handles navigation, commits answers, and forwards the rest to the card.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(typed, m.keys.Next):
			m = m.GoTo(m.index + 1)
			return m, m.card.Init()
		case key.Matches(typed, m.keys.Prev):
			m = m.GoTo(m.index - 1)
			return m, m.card.Init()
		}
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
	case card.AnswerMsg:
		return m.Commit(typed), nil
	case card.AudioMsg:
		if typed.Err != nil {
			m.logger.Warn("audio playback failed", "question_id", typed.QuestionID, "src", typed.Source, "error", typed.Err)
		}
	}
	var cmd tea.Cmd
	m.card, cmd = m.card.Update(msg)
	return m, cmd
}

// Commit records an emitted answer. Answers can arrive after the learner
// has moved on, so any question in the deck is recorded; the card only
// receives the answered state when it shows that question.
func (m Model) Commit(msg card.AnswerMsg) Model {
	index := m.indexOf(msg.QuestionID)
	if index < 0 {
		m.logger.Warn("answer for unknown question dropped", "question_id", msg.QuestionID)
		return m
	}
	if !m.book.Commit(msg.QuestionID, msg.Response) {
		m.logger.Info("duplicate answer ignored", "question_id", msg.QuestionID)
		return m
	}
	answered := m.questions[index]
	m.logger.Info("answer committed",
		"question_id", msg.QuestionID,
		"type", string(answered.Type),
		"correct", question.IsCorrect(answered, msg.Response),
		"active", index == m.index,
	)
	if index == m.index {
		m.card = m.card.SetProps(m.propsFor(m.index))
	}
	return m
}

// indexOf returns the position of a question ID, or -1.
func (m Model) indexOf(id string) int {
	for i, q := range m.questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// GoTo moves to the question at index, clamped to the deck bounds.
func (m Model) GoTo(index int) Model {
	if len(m.questions) == 0 {
		return m
	}
	index = max(0, min(index, len(m.questions)-1))
	if index == m.index {
		return m
	}
	m.index = index
	m.card = m.card.SetProps(m.propsFor(index))
	m.logger.Debug("question shown", "question_id", m.questions[index].ID, "index", index)
	return m
}

// Current returns the question on display.
func (m Model) Current() question.Question {
	if m.index < 0 || m.index >= len(m.questions) {
		return question.Question{}
	}
	return m.questions[m.index]
}

// Index returns the position of the question on display.
func (m Model) Index() int {
	return m.index
}

// Len returns the number of questions.
func (m Model) Len() int {
	return len(m.questions)
}

// Card returns the card on display.
func (m Model) Card() card.Model {
	return m.card
}

// WithCard replaces the card, for drivers that call card operations directly.
func (m Model) WithCard(c card.Model) Model {
	m.card = c
	return m
}

// Book returns the shared answer record.
func (m Model) Book() *AnswerBook {
	return m.book
}

// View renders the position line, the card, and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.questions) == 0 {
		return "No questions.\n"
	}
	position := "Question " + strconv.Itoa(m.index+1) + "/" + strconv.Itoa(len(m.questions))
	if m.title != "" {
		position = m.title + " | " + position
	}
	if !m.noColor {
		position = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render(position)
	}
	bindings := append(m.card.ShortHelp(), m.keys.Prev, m.keys.Next, m.keys.Quit)
	return lipgloss.JoinVertical(lipgloss.Left, position, m.card.View(), m.help.ShortHelpView(bindings))
}
