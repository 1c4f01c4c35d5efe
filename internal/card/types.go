package card

import "quizcard/internal/question"

// Props is the state a parent feeds into a card. The parent owns the answer
// record; the card only reads it.
type Props struct {
	Question   question.Question
	IsAnswered bool
	UserAnswer string
}

// AnswerMsg is emitted when the learner commits a response. Response is the
// trimmed draft for free-text questions and the option verbatim otherwise.
type AnswerMsg struct {
	QuestionID string
	Response   string
}

// OptionState describes how an option is drawn.
type OptionState int

const (
	// OptionIdle is selectable.
	OptionIdle OptionState = iota
	// OptionFocused is selectable and under the cursor.
	OptionFocused
	// OptionCorrect marks the correct answer after answering.
	OptionCorrect
	// OptionIncorrect marks the learner's wrong selection.
	OptionIncorrect
	// OptionMuted marks every other option after answering.
	OptionMuted
)

// String returns a lowercase label for the option state.
func (s OptionState) String() string {
	switch s {
	case OptionFocused:
		return "focused"
	case OptionCorrect:
		return "correct"
	case OptionIncorrect:
		return "incorrect"
	case OptionMuted:
		return "muted"
	default:
		return "idle"
	}
}
