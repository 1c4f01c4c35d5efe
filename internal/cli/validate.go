package cli

import (
	"flag"
	"fmt"
	"io"

	"quizcard/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		questionsFlag := flags.String("questions", "", "Path to a question set (default: questions from config)")
		configFlag := flags.String("config", "", "Path to config file (default: search for .quizcard/config.yml)")
		if code, stop := parseFlags(cmd, flags, args, stdout, stderr); stop {
			return code
		}

		resolved, err := resolveConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		path := questionsPath(*questionsFlag, resolved.Config)
		if path == "" {
			fmt.Fprintln(stderr, "no question set: pass --questions or set questions in the config")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		set, err := question.LoadSet(path)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintf(stdout, "Questions OK: %d question(s) in %s\n", len(set.Questions), path)
		return ExitOK
	}
}
