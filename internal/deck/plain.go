package deck

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quizcard/internal/question"
)

// RunPlain drives the deck line by line for non-interactive terminals. Each
// input line is one action:
//
//	:hint, :?       toggle the hint
//	:next, :n       next question (ends after the last)
//	:prev, :p       previous question
//	:play           play the question audio
//	:quit, :q       stop
//	anything else   an option letter, number, or text; or the free-text answer
//
// Commands carry the ":" prefix so that any word, including "play" or "next",
// can be answered. Blank lines are ignored. The card is printed after every
// action.
func RunPlain(ctx context.Context, m Model, in io.Reader, out io.Writer) (Model, error) {
	if m.Len() == 0 {
		fmt.Fprintln(out, "No questions.")
		return m, nil
	}
	reader := bufio.NewReader(in)
	printCard(out, m)
	for {
		if err := ctx.Err(); err != nil {
			return m, err
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return m, fmt.Errorf("read input: %w", readErr)
		}
		action := strings.TrimSpace(line)
		if action != "" {
			var done bool
			m, done = applyPlainAction(m, action)
			if done {
				return m, nil
			}
			printCard(out, m)
		}
		if readErr == io.EOF {
			return m, nil
		}
	}
}

// commandPrefix marks a plain-mode line as a command rather than an answer.
const commandPrefix = ":"

// applyPlainAction applies one input line and reports whether to stop.
func applyPlainAction(m Model, action string) (Model, bool) {
	if name, ok := strings.CutPrefix(action, commandPrefix); ok {
		return applyPlainCommand(m, strings.ToLower(strings.TrimSpace(name)))
	}
	c := m.Card()
	q := c.Question()
	if q.Type.UsesOptions() {
		index, ok := optionIndex(q, action)
		if !ok {
			return m, false
		}
		c, cmd := c.SelectOption(index)
		return dispatch(m.WithCard(c), cmd), false
	}
	c = c.SetDraft(action)
	c, cmd := c.Submit()
	return dispatch(m.WithCard(c), cmd), false
}

// applyPlainCommand runs a ":" command. Unknown commands are ignored.
func applyPlainCommand(m Model, name string) (Model, bool) {
	switch name {
	case "q", "quit":
		return m, true
	case "n", "next":
		if m.Index() == m.Len()-1 {
			return m, true
		}
		return m.GoTo(m.Index() + 1), false
	case "p", "prev":
		return m.GoTo(m.Index() - 1), false
	case "?", "hint":
		return m.WithCard(m.Card().ToggleHint()), false
	case "play":
		c := m.Card()
		return dispatch(m, c.PlayAudio()), false
	}
	return m, false
}

// dispatch runs a command synchronously and feeds its message to the deck.
func dispatch(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// optionIndex resolves a letter, 1-based number, or option text.
func optionIndex(q question.Question, action string) (int, bool) {
	if len(action) == 1 {
		r := action[0]
		switch {
		case r >= '1' && r <= '9':
			return int(r - '1'), int(r-'1') < len(q.Options)
		case r >= 'a' && r <= 'z':
			return int(r - 'a'), int(r-'a') < len(q.Options)
		case r >= 'A' && r <= 'Z':
			return int(r - 'A'), int(r-'A') < len(q.Options)
		}
	}
	target := question.Normalize(action)
	for i, option := range q.Options {
		if question.Normalize(option) == target {
			return i, true
		}
	}
	return 0, false
}

func printCard(out io.Writer, m Model) {
	fmt.Fprintf(out, "Question %d/%d\n%s\n> ", m.Index()+1, m.Len(), m.Card().View())
}
