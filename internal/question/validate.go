package question

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrUnknownType indicates a question type outside the supported set.
var ErrUnknownType = errors.New("unknown question type")

// Issue captures a validation problem in a question set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

// validate returns the shared struct validator keyed on yaml field names.
func validate() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
		structValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return structValidator
}

// defaultTrueFalseOptions fills TRUE_FALSE questions that omit options.
var defaultTrueFalseOptions = []string{"True", "False"}

// NormalizeSet trims whitespace, assigns missing IDs, and validates a set.
func NormalizeSet(set Set) (Set, error) {
	collector := &issueCollector{}
	set.Title = strings.TrimSpace(set.Title)
	for i := range set.Questions {
		set.Questions[i] = normalizeQuestion(set.Questions[i], i)
	}

	if err := validate().Struct(set); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Set{}, fmt.Errorf("validate question set: %w", err)
		}
		for _, fieldErr := range fieldErrs {
			collector.add(fieldPath(fieldErr), describeTag(fieldErr))
		}
	}

	seenIDs := map[string]struct{}{}
	for i, q := range set.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if _, exists := seenIDs[q.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID))
		} else {
			seenIDs[q.ID] = struct{}{}
		}
		if q.Type != "" && !q.Type.Valid() {
			collector.add(prefix+".type", fmt.Sprintf("%v %q", ErrUnknownType, q.Type))
			continue
		}
		checkOptions(collector, prefix, q)
	}

	if err := collector.result(); err != nil {
		return Set{}, err
	}
	return set, nil
}

// ValidateQuestion runs the set rules against a single question.
func ValidateQuestion(q Question) error {
	_, err := NormalizeSet(Set{Version: 1, Questions: []Question{q}})
	return err
}

func normalizeQuestion(q Question, index int) Question {
	q.ID = strings.TrimSpace(q.ID)
	q.Type = Type(strings.ToUpper(strings.TrimSpace(string(q.Type))))
	q.Text = strings.TrimSpace(q.Text)
	q.AudioURL = strings.TrimSpace(q.AudioURL)
	q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
	q.Explanation = strings.TrimSpace(q.Explanation)
	q.Options = normalizeStringSlice(q.Options)
	if q.Type == TypeTrueFalse && len(q.Options) == 0 {
		q.Options = append([]string(nil), defaultTrueFalseOptions...)
	}
	if q.ID == "" {
		q.ID = DeriveID(q, index)
	}
	return q
}

func checkOptions(collector *issueCollector, prefix string, q Question) {
	if !q.Type.UsesOptions() {
		if len(q.Options) > 0 {
			collector.add(prefix+".options", fmt.Sprintf("not used by %s questions", q.Type))
		}
		return
	}
	if len(q.Options) < 2 {
		collector.add(prefix+".options", "must include at least two entries")
		return
	}
	seen := map[string]struct{}{}
	for optionIndex, option := range q.Options {
		key := Normalize(option)
		if _, exists := seen[key]; exists {
			collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), fmt.Sprintf("duplicate option %q", option))
			continue
		}
		seen[key] = struct{}{}
	}
	if q.CorrectAnswer == "" {
		return
	}
	if _, ok := seen[Normalize(q.CorrectAnswer)]; !ok {
		collector.add(prefix+".correct_answer", fmt.Sprintf("unknown option %q", q.CorrectAnswer))
	}
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describeTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must include at least %s entry", fieldErr.Param())
	case "eq":
		return fmt.Sprintf("unsupported version %v", fieldErr.Value())
	default:
		return fmt.Sprintf("failed %q check", fieldErr.Tag())
	}
}

func normalizeStringSlice(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
