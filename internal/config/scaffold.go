package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
questions: ".quizcard/questions.yml"
ui: auto
lang: en
no_color: false

audio:
  # Player invoked with the audio URL as its last argument, e.g. "mpv --no-video".
  command: ""

log:
  file: ""
  level: info
  format: text
`

const sampleQuestions = `version: 1
title: "Sample quiz"
questions:
  - id: capital-france
    type: FILL_IN_BLANK
    question: "The capital of France is ____."
    correct_answer: "Paris"
    explanation: "Paris has been the capital of France since 987."
  - id: largest-planet
    type: MULTIPLE_CHOICE
    question: "Which planet is the largest in the solar system?"
    options:
      - "Mars"
      - "Jupiter"
      - "Venus"
    correct_answer: "Jupiter"
    explanation: "Jupiter is more than twice as massive as all other planets combined."
  - id: water-boils
    type: TRUE_FALSE
    question: "At sea level, water boils at 100 degrees Celsius."
    correct_answer: "True"
`

// Scaffold writes a starter config and sample question set under root.
// It refuses to overwrite existing files.
func Scaffold(root string) (ScaffoldResult, error) {
	if root == "" {
		return ScaffoldResult{}, fmt.Errorf("root directory is required")
	}
	result := ScaffoldResult{
		ConfigPath:    ConfigPath(root),
		QuestionsPath: filepath.Join(ConfigDir(root), SampleSetName),
	}
	for _, path := range []string{result.ConfigPath, result.QuestionsPath} {
		if err := ensureAbsent(path); err != nil {
			return ScaffoldResult{}, err
		}
	}

	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		return ScaffoldResult{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(result.ConfigPath, []byte(defaultConfig), 0o644); err != nil {
		return ScaffoldResult{}, fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(result.QuestionsPath, []byte(sampleQuestions), 0o644); err != nil {
		return ScaffoldResult{}, fmt.Errorf("write questions file: %w", err)
	}
	return result, nil
}

// ScaffoldResult lists the files Scaffold created.
type ScaffoldResult struct {
	ConfigPath    string
	QuestionsPath string
}

func ensureAbsent(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("path %q is a directory", path)
		}
		return fmt.Errorf("file already exists at %q", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %q: %w", path, err)
	}
	return nil
}
