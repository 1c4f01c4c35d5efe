// Package hint derives partial disclosures about a question's correct answer.
package hint

import (
	"strings"
	"unicode/utf8"

	"quizcard/internal/question"
)

// Hint is the payload shown before a question is answered. Zero values mean
// the field is not disclosed.
type Hint struct {
	Length    int
	FirstChar string
	Text      string
}

// IsZero reports whether no hint has been generated.
func (h Hint) IsZero() bool {
	return h.Length == 0 && h.FirstChar == "" && h.Text == ""
}

// Texts holds the fixed advisory lines, one per response style.
type Texts struct {
	FreeText string
	Options  string
}

// DefaultTexts are the English advisory lines.
var DefaultTexts = Texts{
	FreeText: "Hint: listen carefully for the missing word.",
	Options:  "Hint: one of the options below is the correct answer.",
}

// Generator builds hints for a question.
type Generator func(q question.Question) Hint

// NewGenerator returns a Generator using the given advisory lines.
func NewGenerator(texts Texts) Generator {
	return func(q question.Question) Hint {
		return Generate(q, texts)
	}
}

// Generate builds the hint for q. Only free-text questions disclose the
// answer length and first character; option questions get the advisory
// line alone since the answer is already on screen.
func Generate(q question.Question, texts Texts) Hint {
	if q.Type != question.TypeFillInBlank {
		return Hint{Text: texts.Options}
	}
	answer := strings.TrimSpace(q.CorrectAnswer)
	h := Hint{
		Length: utf8.RuneCountInString(answer),
		Text:   texts.FreeText,
	}
	if first, size := utf8.DecodeRuneInString(answer); size > 0 {
		h.FirstChar = strings.ToUpper(string(first))
	}
	return h
}
