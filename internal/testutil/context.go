// Package testutil holds helpers shared by quizcard tests.
package testutil

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

// DefaultTimeout bounds a test session when no timeout is given.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled at test cleanup, never outliving the
// test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Lines returns a reader yielding each line followed by a newline, as a
// learner would type them in a plain session.
func Lines(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
