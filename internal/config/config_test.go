package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, body string) string {
	t.Helper()
	dir := ConfigDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadNormalizesValues(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `version: 1
questions: "sets/geo.yml"
ui: LIVE
lang: vi-VN
audio:
  command: "  mpv --no-video  "
log:
  file: logs/quizcard.log
  level: WARNING
  format: JSON
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != "live" {
		t.Fatalf("expected ui live, got %q", cfg.UI)
	}
	if cfg.Lang != "vi" {
		t.Fatalf("expected lang vi, got %q", cfg.Lang)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Audio.Command != "mpv --no-video" {
		t.Fatalf("expected trimmed audio command, got %q", cfg.Audio.Command)
	}
	if want := filepath.Join(root, "sets", "geo.yml"); cfg.Questions != want {
		t.Fatalf("expected questions %q, got %q", want, cfg.Questions)
	}
	if want := filepath.Join(root, "logs", "quizcard.log"); cfg.Log.File != want {
		t.Fatalf("expected log file %q, got %q", want, cfg.Log.File)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown field", body: "version: 1\ntheme: dark\n", want: "field theme not found"},
		{name: "bad ui", body: "version: 1\nui: fancy\n", want: `ui: invalid value "fancy"`},
		{name: "bad lang", body: "version: 1\nlang: fr\n", want: `lang: invalid value "fr"`},
		{name: "bad level", body: "version: 1\nlog:\n  level: trace\n", want: "log.level"},
		{name: "bad version", body: "version: 2\n", want: "version: unsupported version 2"},
		{name: "multiple documents", body: "version: 1\n---\nversion: 1\n", want: "multiple documents"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.body)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.UI = "fancy"
	cfg.Log.Format = "xml"

	err := Validate(cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %v", validationErr.Fields)
	}
}

func TestFindConfigPathSearchesParents(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if found != path {
		t.Fatalf("expected %q, got %q", path, found)
	}
	if got := RootFromConfigPath(found); got != root {
		t.Fatalf("expected root %q, got %q", root, got)
	}
}

func TestScaffoldWritesFilesOnce(t *testing.T) {
	root := t.TempDir()
	result, err := Scaffold(root)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(result.ConfigPath)
	if err != nil {
		t.Fatalf("load scaffolded config: %v", err)
	}
	if cfg.Questions != result.QuestionsPath {
		t.Fatalf("expected questions %q, got %q", result.QuestionsPath, cfg.Questions)
	}
	if _, err := Scaffold(root); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}
}
