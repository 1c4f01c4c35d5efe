package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

const sampleSet = `version: 1
title: Geography
questions:
  - id: capital
    type: FILL_IN_BLANK
    question: "The capital of France is ____."
    correct_answer: Paris
  - id: planet
    type: MULTIPLE_CHOICE
    question: "Largest planet?"
    options: [Mars, Jupiter, Venus]
    correct_answer: Jupiter
`

// isolateEnv hides process environment variables from config resolution.
func isolateEnv(t *testing.T) {
	t.Helper()
	original := lookupEnv
	lookupEnv = func(string) (string, bool) { return "", false }
	t.Cleanup(func() { lookupEnv = original })
}

// writeFile writes body under dir and returns the path.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// setInput swaps a package-level reader for the duration of a test.
func setInput(t *testing.T, target *io.Reader, in io.Reader) {
	t.Helper()
	original := *target
	*target = in
	t.Cleanup(func() { *target = original })
}
