package question

// IsCorrect reports whether response matches the question's correct answer.
// A missing response is always incorrect.
func IsCorrect(q Question, response string) bool {
	if response == "" {
		return false
	}
	return Normalize(response) == Normalize(q.CorrectAnswer)
}

// IsCorrectOption reports whether an option is the question's correct answer.
func IsCorrectOption(q Question, option string) bool {
	return option != "" && Normalize(option) == Normalize(q.CorrectAnswer)
}

// Verdict is the presentation state of a question.
type Verdict int

const (
	// Unanswered accepts input.
	Unanswered Verdict = iota
	// AnsweredCorrect is terminal with a matching response.
	AnsweredCorrect
	// AnsweredIncorrect is terminal with a missing or wrong response.
	AnsweredIncorrect
)

// String returns a lowercase label for the verdict.
func (v Verdict) String() string {
	switch v {
	case AnsweredCorrect:
		return "correct"
	case AnsweredIncorrect:
		return "incorrect"
	default:
		return "unanswered"
	}
}

// Judge derives the verdict from the parent's answer record.
func Judge(q Question, isAnswered bool, response string) Verdict {
	if !isAnswered {
		return Unanswered
	}
	if IsCorrect(q, response) {
		return AnsweredCorrect
	}
	return AnsweredIncorrect
}
