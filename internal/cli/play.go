package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"quizcard/internal/audio"
	"quizcard/internal/card"
	"quizcard/internal/config"
	"quizcard/internal/deck"
	"quizcard/internal/logging"
	"quizcard/internal/question"
)

// playInput allows tests to script plain-mode answers.
var playInput io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		questionsFlag := flags.String("questions", "", "Path to a question set (default: questions from config)")
		configFlag := flags.String("config", "", "Path to config file (default: search for .quizcard/config.yml)")
		uiFlag := flags.String("ui", "", "UI mode: auto|live|plain")
		langFlag := flags.String("lang", "", "Interface language: en|vi")
		noColorFlag := flags.Bool("no-color", false, "Disable colors")
		logFileFlag := flags.String("log-file", "", "Write logs to this file")
		logLevelFlag := flags.String("log-level", "", "Log level: debug|info|warn|error")
		if code, stop := parseFlags(cmd, flags, args, stdout, stderr); stop {
			return code
		}

		resolved, err := resolveConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		cfg := resolved.Config
		cfg.Questions = questionsPath(*questionsFlag, cfg)
		applyFlag(&cfg.UI, *uiFlag)
		applyFlag(&cfg.Lang, *langFlag)
		applyFlag(&cfg.Log.File, *logFileFlag)
		applyFlag(&cfg.Log.Level, *logLevelFlag)
		if *noColorFlag {
			cfg.NoColor = true
		}
		config.Normalize(&cfg, "")
		if err := config.Validate(cfg); err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitUsage
		}
		if cfg.Questions == "" {
			fmt.Fprintln(stderr, "no question set: pass --questions or set questions in the config")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		decision, err := resolveUIMode(cfg.UI, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, closeLog, err := buildLogger(cfg.Log, decision.useLive, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		defer closeLog()
		logger.Debug("config resolved", "path", resolved.Path, "ui", cfg.UI, "lang", cfg.Lang, "live", decision.useLive)

		set, err := question.LoadSet(cfg.Questions)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed:\n%v\n", err)
			return ExitError
		}
		messages, err := card.MessagesFor(cfg.Lang)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitUsage
		}

		var player card.AudioPlayer
		if command, err := audio.ParseCommand(cfg.Audio.Command); err == nil {
			player = command
		} else if !errors.Is(err, audio.ErrNoCommand) {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}

		model := deck.New(set.Questions, deck.Options{
			Title:    set.Title,
			NoColor:  cfg.NoColor || !decision.useLive,
			Messages: messages,
			Player:   player,
			Logger:   logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		logger.Info("session started", "questions", len(set.Questions), "source", cfg.Questions)
		if decision.useLive {
			model, err = deck.RunLive(ctx, model, nil, stdout)
		} else {
			model, err = deck.RunPlain(ctx, model, playInput, stdout)
			fmt.Fprintln(stdout)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		logger.Info("session finished", "answered", model.Book().Len(), "questions", model.Len())
		return ExitOK
	}
}

func applyFlag(target *string, value string) {
	if value != "" {
		*target = value
	}
}

// buildLogger opens the configured log file. Without one, plain sessions
// log to stderr and live sessions discard records so the screen stays intact.
func buildLogger(cfg config.LogConfig, live bool, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := logging.Options{Level: level, Format: logging.Format(cfg.Format)}
	closeFn := func() {}
	switch {
	case cfg.File != "":
		file, err := logging.OpenFile(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		opts.Writer = file
		closeFn = func() { _ = file.Close() }
	case !live:
		opts.Writer = stderr
	}
	return logging.New(opts), closeFn, nil
}
