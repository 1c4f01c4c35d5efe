package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizcard/internal/config"
)

// lookupEnv reads process environment variables; tests replace it.
var lookupEnv config.LookupFunc = os.LookupEnv

// resolveConfig layers the config file, .env and environment. An explicit
// path must exist; otherwise the file is searched upward from CWD.
func resolveConfig(configPath string) (config.Resolved, error) {
	opts := config.ResolveOptions{Env: lookupEnv}
	if strings.TrimSpace(configPath) != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return config.Resolved{}, fmt.Errorf("resolve config path: %w", err)
		}
		opts.ConfigPath = abs
	}
	return config.Resolve(opts)
}

// parseFlags parses command flags and reports the exit code when the
// command should stop.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, true
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, true
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, true
	}
	return ExitOK, false
}

// questionsPath picks the flag value over the configured set.
func questionsPath(flagValue string, cfg config.Config) string {
	if value := strings.TrimSpace(flagValue); value != "" {
		return value
	}
	return cfg.Questions
}
