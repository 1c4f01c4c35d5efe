package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg, RootFromConfigPath(path))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a single YAML config document, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ResolveOptions controls Resolve.
type ResolveOptions struct {
	// ConfigPath is an explicit config file; empty searches upward from WorkDir.
	ConfigPath string
	WorkDir    string
	Env        LookupFunc
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	Config Config
	// Path is the config file used, or empty when defaults applied.
	Path string
	Root string
}

// Resolve layers defaults, the config file, .env, and the environment.
func Resolve(opts ResolveOptions) (Resolved, error) {
	path := opts.ConfigPath
	if path == "" {
		found, err := FindConfigPath(opts.WorkDir)
		switch {
		case err == nil:
			path = found
		case errors.Is(err, ErrConfigNotFound):
		default:
			return Resolved{}, err
		}
	}

	cfg := Default()
	root := opts.WorkDir
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Resolved{}, err
		}
		cfg = loaded
		root = RootFromConfigPath(path)
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Resolved{}, fmt.Errorf("get working directory: %w", err)
		}
		root = wd
	}

	dotenv, err := ReadDotEnv(root)
	if err != nil {
		return Resolved{}, err
	}
	if err := ApplyEnv(&cfg, ChainLookup(opts.Env, dotenv)); err != nil {
		return Resolved{}, err
	}
	Normalize(&cfg, root)
	if err := Validate(cfg); err != nil {
		return Resolved{}, err
	}
	return Resolved{Config: cfg, Path: path, Root: root}, nil
}
