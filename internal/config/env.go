package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvUI           = "QUIZCARD_UI"
	EnvLang         = "QUIZCARD_LANG"
	EnvNoColor      = "QUIZCARD_NO_COLOR"
	EnvQuestions    = "QUIZCARD_QUESTIONS"
	EnvAudioCommand = "QUIZCARD_AUDIO_COMMAND"
	EnvLogFile      = "QUIZCARD_LOG_FILE"
	EnvLogLevel     = "QUIZCARD_LOG_LEVEL"
	EnvLogFormat    = "QUIZCARD_LOG_FORMAT"
)

// LookupFunc reads a variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ReadDotEnv parses dir/.env without touching the process environment.
// A missing file yields an empty map.
func ReadDotEnv(dir string) (map[string]string, error) {
	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("stat env file: %w", err)
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return values, nil
}

// ChainLookup consults the process environment first, then dotenv values.
func ChainLookup(env LookupFunc, dotenv map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if env != nil {
			if value, ok := env(key); ok {
				return value, true
			}
		}
		value, ok := dotenv[key]
		return value, ok
	}
}

// ApplyEnv overrides cfg fields from QUIZCARD_* variables. NO_COLOR is
// honoured when set to any non-empty value.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	setString := func(key string, target *string) {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			*target = value
		}
	}
	setString(EnvUI, &cfg.UI)
	setString(EnvLang, &cfg.Lang)
	setString(EnvQuestions, &cfg.Questions)
	setString(EnvAudioCommand, &cfg.Audio.Command)
	setString(EnvLogFile, &cfg.Log.File)
	setString(EnvLogLevel, &cfg.Log.Level)
	setString(EnvLogFormat, &cfg.Log.Format)

	if value, ok := lookup(EnvNoColor); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoColor, err)
		}
		cfg.NoColor = parsed
	}
	if value, ok := lookup("NO_COLOR"); ok && value != "" {
		cfg.NoColor = true
	}
	return nil
}
