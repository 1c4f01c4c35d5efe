package question

import "strings"

// Type identifies how a question collects its response.
type Type string

const (
	// TypeMultipleChoice picks one entry from Options.
	TypeMultipleChoice Type = "MULTIPLE_CHOICE"
	// TypeFillInBlank collects free text.
	TypeFillInBlank Type = "FILL_IN_BLANK"
	// TypeTrueFalse picks between two options, defaulting to True/False.
	TypeTrueFalse Type = "TRUE_FALSE"
)

// Types lists every supported question type.
var Types = []Type{TypeMultipleChoice, TypeFillInBlank, TypeTrueFalse}

// Valid reports whether the type is part of the supported set.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// UsesOptions reports whether responses are chosen from Options.
func (t Type) UsesOptions() bool {
	return t == TypeMultipleChoice || t == TypeTrueFalse
}

// Label renders the type for display, e.g. "FILL IN BLANK".
func (t Type) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// Set is the question-set file schema loaded from JSON or YAML.
type Set struct {
	Version   int        `json:"version" yaml:"version" validate:"eq=1"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions" validate:"required,min=1,dive"`
}

// Question is a single quiz question. Values are treated as immutable once
// handed to a card.
type Question struct {
	ID            string   `json:"id" yaml:"id"`
	Type          Type     `json:"type" yaml:"type" validate:"required"`
	Text          string   `json:"question" yaml:"question" validate:"required"`
	AudioURL      string   `json:"audio_url,omitempty" yaml:"audio_url,omitempty"`
	Options       []string `json:"options,omitempty" yaml:"options,omitempty" validate:"dive,required"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer" validate:"required"`
	Explanation   string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// HasAudio reports whether the question carries an audio reference.
func (q Question) HasAudio() bool {
	return strings.TrimSpace(q.AudioURL) != ""
}
