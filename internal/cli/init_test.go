package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCommandCreatesFiles(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".quizcard", "config.yml")
	questionsPath := filepath.Join(dir, ".quizcard", "questions.yml")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--dir", dir, "--yes"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Fatalf("expected output to include writes, got %q", out.String())
	}
	for _, path := range []string{configPath, questionsPath} {
		if _, statErr := os.Stat(path); statErr != nil {
			t.Fatalf("expected %s to exist: %v", path, statErr)
		}
	}

	out.Reset()
	err.Reset()
	code = Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected scaffolded set to validate, got %d (%s)", code, err.String())
	}
	if !strings.Contains(out.String(), "3 question(s)") {
		t.Fatalf("expected three sample questions, got %q", out.String())
	}
}

func TestInitCommandPromptDeclined(t *testing.T) {
	dir := t.TempDir()
	setInput(t, &initInput, strings.NewReader("n\n"))

	var out, err bytes.Buffer
	code := Run([]string{"init", "--dir", dir}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Init cancelled") {
		t.Fatalf("expected cancellation, got %q", err.String())
	}
	if _, statErr := os.Stat(filepath.Join(dir, ".quizcard")); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config dir, got %v", statErr)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".quizcard/config.yml", "version: 1\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--dir", dir, "--yes"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
}
