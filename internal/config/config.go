// Package config loads quizcard settings from .quizcard/config.yml, a .env
// file, and QUIZCARD_* environment variables, in increasing precedence.
package config

// Config holds the resolved application settings.
type Config struct {
	Version   int         `yaml:"version" validate:"eq=1"`
	Questions string      `yaml:"questions,omitempty"`
	UI        string      `yaml:"ui,omitempty" validate:"oneof=auto live plain"`
	Lang      string      `yaml:"lang,omitempty" validate:"oneof=en vi"`
	NoColor   bool        `yaml:"no_color,omitempty"`
	Audio     AudioConfig `yaml:"audio,omitempty"`
	Log       LogConfig   `yaml:"log,omitempty"`
}

// AudioConfig configures the external audio player.
type AudioConfig struct {
	Command string `yaml:"command,omitempty"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	File   string `yaml:"file,omitempty"`
	Level  string `yaml:"level,omitempty" validate:"oneof=debug info warn error"`
	Format string `yaml:"format,omitempty" validate:"oneof=text json"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Version: 1,
		UI:      "auto",
		Lang:    "en",
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}
