package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values, lowercases enums, and fills defaults in place.
// Relative file paths are resolved against root when root is set.
func Normalize(cfg *Config, root string) {
	defaults := Default()
	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	cfg.UI = lowerOr(cfg.UI, defaults.UI)
	cfg.Lang = lowerOr(cfg.Lang, defaults.Lang)
	if base, _, ok := strings.Cut(cfg.Lang, "-"); ok {
		cfg.Lang = base
	}
	cfg.Log.Level = lowerOr(cfg.Log.Level, defaults.Log.Level)
	if cfg.Log.Level == "warning" {
		cfg.Log.Level = "warn"
	}
	cfg.Log.Format = lowerOr(cfg.Log.Format, defaults.Log.Format)
	cfg.Audio.Command = strings.TrimSpace(cfg.Audio.Command)
	cfg.Questions = resolvePath(cfg.Questions, root)
	cfg.Log.File = resolvePath(cfg.Log.File, root)
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

func resolvePath(path, root string) string {
	path = strings.TrimSpace(path)
	if path == "" || root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
