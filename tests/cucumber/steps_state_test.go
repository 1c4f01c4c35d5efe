package cucumber

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cucumber/godog"

	"quizcard/internal/card"
	"quizcard/internal/deck"
	"quizcard/internal/question"
)

// featureState holds one scenario's deck and the answers the card emitted.
type featureState struct {
	questions []question.Question
	deck      deck.Model
	started   bool
	emitted   []card.AnswerMsg
	lastHint  string
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a fill-in-blank question "([^"]*)" with correct answer "([^"]*)"$`, state.aFillInBlankQuestion)
	ctx.Step(`^a multiple-choice question "([^"]*)" with options "([^"]*)" and correct answer "([^"]*)"$`, state.aMultipleChoiceQuestion)
	ctx.Step(`^I type "([^"]*)" and submit$`, state.iTypeAndSubmit)
	ctx.Step(`^I type "([^"]*)" and submit twice before the deck records it$`, state.iTypeAndSubmitTwice)
	ctx.Step(`^I type "([^"]*)"$`, state.iType)
	ctx.Step(`^I select option "([^"]*)"$`, state.iSelectOption)
	ctx.Step(`^I select option "([^"]*)" and move to the next question before the deck records it$`, state.iSelectOptionThenMoveOn)
	ctx.Step(`^I move to the previous question$`, state.iMoveToThePreviousQuestion)
	ctx.Step(`^I open the hint$`, state.iOpenTheHint)
	ctx.Step(`^I move to the next question$`, state.iMoveToTheNextQuestion)
	ctx.Step(`^the emitted answer is "([^"]*)"$`, state.theEmittedAnswerIs)
	ctx.Step(`^no answer is emitted$`, state.noAnswerIsEmitted)
	ctx.Step(`^exactly (\d+) answers? (?:is|are) emitted$`, state.exactlyAnswersEmitted)
	ctx.Step(`^the question is answered (correctly|incorrectly)$`, state.theQuestionIsAnswered)
	ctx.Step(`^the question is unanswered$`, state.theQuestionIsUnanswered)
	ctx.Step(`^the option states are "([^"]*)"$`, state.theOptionStatesAre)
	ctx.Step(`^selecting option "([^"]*)" emits nothing$`, state.selectingOptionEmitsNothing)
	ctx.Step(`^the hint shows (\d+) letters starting with "([^"]*)"$`, state.theHintShows)
	ctx.Step(`^opening the hint again shows the same content$`, state.openingTheHintAgain)
	ctx.Step(`^the draft is "([^"]*)"$`, state.theDraftIs)
	ctx.Step(`^the hint is hidden$`, state.theHintIsHidden)
}

// reset clears state before each scenario.
func (s *featureState) reset() {
	s.questions = nil
	s.deck = deck.Model{}
	s.started = false
	s.emitted = nil
	s.lastHint = ""
}

// current lazily builds the deck from the questions declared so far.
func (s *featureState) current() deck.Model {
	if !s.started {
		s.deck = deck.New(s.questions, deck.Options{NoColor: true, Messages: card.English})
		s.started = true
	}
	return s.deck
}

// deliver records an emitted answer and lets the deck commit it.
func (s *featureState) deliver(cmd tea.Cmd) error {
	if cmd == nil {
		return nil
	}
	msg, ok := cmd().(card.AnswerMsg)
	if !ok {
		return fmt.Errorf("expected an answer message")
	}
	s.emitted = append(s.emitted, msg)
	updated, _ := s.deck.Update(msg)
	s.deck = updated.(deck.Model)
	return nil
}
