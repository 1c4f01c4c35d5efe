package deck

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quizcard/internal/card"
	"quizcard/internal/question"
	"quizcard/internal/testutil"
)

// TestRunPlainAnswersQuestions verifies a scripted plain session.
func TestRunPlainAnswersQuestions(t *testing.T) {
	input := testutil.Lines(":?", "c", "b", ":n", "", ":hint", "  ", " Paris ", ":next")
	var out bytes.Buffer
	m, err := RunPlain(testutil.Context(t, 5*time.Second), New(sampleQuestions(), Options{NoColor: true}), input, &out)
	if err != nil {
		t.Fatalf("run plain: %v", err)
	}
	if response, _ := m.Book().Response("mc"); response != "C" {
		t.Fatalf("expected mc answered with C, got %q", response)
	}
	if response, _ := m.Book().Response("blank"); response != "Paris" {
		t.Fatalf("expected blank answered with Paris, got %q", response)
	}
	output := out.String()
	for _, want := range []string{
		"Question 1/2",
		card.English.Hints.Options,
		"✗ C. C",
		"Question 2/2",
		"Length: 5 letters",
		"✓ Paris",
		"EXCELLENT, CORRECT!",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
}

// TestRunPlainOptionText verifies options can be chosen by text.
func TestRunPlainOptionText(t *testing.T) {
	var out bytes.Buffer
	m, err := RunPlain(testutil.Context(t, 5*time.Second), New(sampleQuestions(), Options{NoColor: true}), testutil.Lines("nope", "b.", ":q"), &out)
	if err != nil {
		t.Fatalf("run plain: %v", err)
	}
	if response, _ := m.Book().Response("mc"); response != "B" {
		t.Fatalf("expected verbatim option B, got %q", response)
	}
}

// TestRunPlainCommandWordsAreAnswers verifies words that name commands are
// submitted as answers unless they carry the command prefix.
func TestRunPlainCommandWordsAreAnswers(t *testing.T) {
	questions := []question.Question{
		{ID: "w", Type: question.TypeFillInBlank, Text: "Type the word you hear", CorrectAnswer: "play"},
		{ID: "x", Type: question.TypeFillInBlank, Text: "Type the word you hear", CorrectAnswer: "next"},
	}
	var out bytes.Buffer
	input := testutil.Lines("play", ":next", "next", ":quit", "ignored")
	m, err := RunPlain(testutil.Context(t, 5*time.Second), New(questions, Options{NoColor: true}), input, &out)
	if err != nil {
		t.Fatalf("run plain: %v", err)
	}
	if response, _ := m.Book().Response("w"); response != "play" {
		t.Fatalf("expected play to be answered, got %q", response)
	}
	if response, _ := m.Book().Response("x"); response != "next" {
		t.Fatalf("expected next to be answered, got %q", response)
	}
	if m.Card().Verdict() != question.AnsweredCorrect {
		t.Fatalf("expected correct verdict, got %s", m.Card().Verdict())
	}
}

// TestRunPlainUnknownCommandIgnored verifies an unknown command neither
// answers nor stops the session.
func TestRunPlainUnknownCommandIgnored(t *testing.T) {
	var out bytes.Buffer
	m, err := RunPlain(testutil.Context(t, 5*time.Second), New(sampleQuestions(), Options{NoColor: true}), testutil.Lines(":skip", "b"), &out)
	if err != nil {
		t.Fatalf("run plain: %v", err)
	}
	if response, _ := m.Book().Response("mc"); response != "B" {
		t.Fatalf("expected B after unknown command, got %q", response)
	}
}

// TestRunPlainStopsOnEOF verifies input without trailing newline is applied.
func TestRunPlainStopsOnEOF(t *testing.T) {
	var out bytes.Buffer
	m, err := RunPlain(testutil.Context(t, 5*time.Second), New(sampleQuestions(), Options{NoColor: true}), strings.NewReader("a"), &out)
	if err != nil {
		t.Fatalf("run plain: %v", err)
	}
	if !m.Book().IsAnswered("mc") {
		t.Fatalf("expected final line to be applied")
	}
}

// TestRunPlainCancelled verifies a cancelled context stops the loop.
func TestRunPlainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err := RunPlain(ctx, New(sampleQuestions(), Options{NoColor: true}), strings.NewReader("a\n"), &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

// TestRunPlainEmptyDeck verifies an empty deck prints a notice.
func TestRunPlainEmptyDeck(t *testing.T) {
	var out bytes.Buffer
	if _, err := RunPlain(context.Background(), New(nil, Options{NoColor: true}), strings.NewReader(""), &out); err != nil {
		t.Fatalf("run plain: %v", err)
	}
	if !strings.Contains(out.String(), "No questions.") {
		t.Fatalf("expected notice, got %q", out.String())
	}
}
