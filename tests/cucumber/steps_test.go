package cucumber

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quizcard/internal/deck"
	"quizcard/internal/question"
)

func (s *featureState) aFillInBlankQuestion(id, correct string) error {
	s.questions = append(s.questions, question.Question{
		ID:            id,
		Type:          question.TypeFillInBlank,
		Text:          "Fill in the blank",
		CorrectAnswer: correct,
	})
	return nil
}

func (s *featureState) aMultipleChoiceQuestion(id, options, correct string) error {
	q := question.Question{
		ID:            id,
		Type:          question.TypeMultipleChoice,
		Text:          "Pick one",
		CorrectAnswer: correct,
	}
	for _, option := range strings.Split(options, ",") {
		q.Options = append(q.Options, strings.TrimSpace(option))
	}
	s.questions = append(s.questions, q)
	return nil
}

func (s *featureState) iType(text string) error {
	m := s.current()
	s.deck = m.WithCard(m.Card().SetDraft(text))
	return nil
}

func (s *featureState) iTypeAndSubmit(text string) error {
	if err := s.iType(text); err != nil {
		return err
	}
	c, cmd := s.deck.Card().Submit()
	s.deck = s.deck.WithCard(c)
	return s.deliver(cmd)
}

func (s *featureState) iTypeAndSubmitTwice(text string) error {
	if err := s.iType(text); err != nil {
		return err
	}
	c, first := s.deck.Card().Submit()
	c, second := c.Submit()
	s.deck = s.deck.WithCard(c)
	for _, cmd := range []tea.Cmd{first, second} {
		if err := s.deliver(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (s *featureState) iSelectOption(option string) error {
	m := s.current()
	index := indexOf(m.Current().Options, option)
	if index < 0 {
		return fmt.Errorf("unknown option %q", option)
	}
	c, cmd := m.Card().SelectOption(index)
	s.deck = m.WithCard(c)
	return s.deliver(cmd)
}

func (s *featureState) iSelectOptionThenMoveOn(option string) error {
	m := s.current()
	index := indexOf(m.Current().Options, option)
	if index < 0 {
		return fmt.Errorf("unknown option %q", option)
	}
	c, cmd := m.Card().SelectOption(index)
	s.deck = m.WithCard(c)
	updated, _ := s.deck.Update(tea.KeyMsg{Type: tea.KeyTab})
	s.deck = updated.(deck.Model)
	return s.deliver(cmd)
}

func (s *featureState) iMoveToThePreviousQuestion() error {
	m := s.current()
	s.deck = m.GoTo(m.Index() - 1)
	return nil
}

func (s *featureState) iOpenTheHint() error {
	m := s.current()
	s.deck = m.WithCard(m.Card().ToggleHint())
	return nil
}

func (s *featureState) iMoveToTheNextQuestion() error {
	m := s.current()
	s.deck = m.GoTo(m.Index() + 1)
	return nil
}

func (s *featureState) theEmittedAnswerIs(expected string) error {
	if len(s.emitted) == 0 {
		return fmt.Errorf("expected %q to be emitted, got nothing", expected)
	}
	if got := s.emitted[len(s.emitted)-1].Response; got != expected {
		return fmt.Errorf("expected emitted answer %q, got %q", expected, got)
	}
	return nil
}

func (s *featureState) noAnswerIsEmitted() error {
	return s.exactlyAnswersEmitted(0)
}

func (s *featureState) exactlyAnswersEmitted(count int) error {
	if len(s.emitted) != count {
		return fmt.Errorf("expected %d emitted answers, got %d", count, len(s.emitted))
	}
	return nil
}

func (s *featureState) theQuestionIsAnswered(how string) error {
	want := question.AnsweredCorrect
	if how == "incorrectly" {
		want = question.AnsweredIncorrect
	}
	if got := s.current().Card().Verdict(); got != want {
		return fmt.Errorf("expected verdict %s, got %s", want, got)
	}
	return nil
}

func (s *featureState) theQuestionIsUnanswered() error {
	if got := s.current().Card().Verdict(); got != question.Unanswered {
		return fmt.Errorf("expected unanswered, got %s", got)
	}
	return nil
}

func (s *featureState) theOptionStatesAre(expected string) error {
	states := s.current().Card().OptionStates()
	labels := make([]string, 0, len(states))
	for _, state := range states {
		labels = append(labels, state.String())
	}
	if got := strings.Join(labels, ", "); got != expected {
		return fmt.Errorf("expected option states %q, got %q", expected, got)
	}
	return nil
}

func (s *featureState) selectingOptionEmitsNothing(option string) error {
	before := len(s.emitted)
	if err := s.iSelectOption(option); err != nil {
		return err
	}
	if len(s.emitted) != before {
		return fmt.Errorf("expected selecting %q to emit nothing", option)
	}
	return nil
}

func (s *featureState) theHintShows(length int, first string) error {
	c := s.current().Card()
	if !c.HintShown() {
		return fmt.Errorf("expected the hint to be shown")
	}
	h, _ := c.Hint()
	if h.Length != length || h.FirstChar != first {
		return fmt.Errorf("expected hint %d/%q, got %d/%q", length, first, h.Length, h.FirstChar)
	}
	s.lastHint = fmt.Sprintf("%+v", h)
	return nil
}

func (s *featureState) openingTheHintAgain() error {
	m := s.current()
	c := m.Card().ToggleHint().ToggleHint()
	s.deck = m.WithCard(c)
	if !c.HintShown() {
		return fmt.Errorf("expected the hint to be shown")
	}
	h, _ := c.Hint()
	if got := fmt.Sprintf("%+v", h); got != s.lastHint {
		return fmt.Errorf("expected hint %s, got %s", s.lastHint, got)
	}
	return nil
}

func (s *featureState) theDraftIs(expected string) error {
	if got := s.current().Card().Draft(); got != expected {
		return fmt.Errorf("expected draft %q, got %q", expected, got)
	}
	return nil
}

func (s *featureState) theHintIsHidden() error {
	if s.current().Card().HintShown() {
		return fmt.Errorf("expected the hint to be hidden")
	}
	return nil
}

func indexOf(options []string, target string) int {
	for i, option := range options {
		if option == target {
			return i
		}
	}
	return -1
}
