package cli

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"quizrunner/internal/question"
)

// runChapters builds the handler for the chapters command.
func runChapters(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		filePath := flags.String("file", "", "Path to the question workbook (default: from config)")
		configPath := flags.String("config", "", "Path to quizrunner.yml (default: next to the executable)")
		all := flags.Bool("all", false, "Include chapters without questions")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		env, err := loadEnvironment(*configPath, *filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error:\n%v\n", err)
			return ExitError
		}
		bank, code, ok := loadBank(env, zap.NewNop(), stderr)
		if !ok {
			return code
		}

		for _, choice := range question.Choices(bank, env.cfg.Catalog()) {
			if choice.Count == 0 && !*all {
				continue
			}
			fmt.Fprintf(stdout, "%5d  %s\n", choice.Count, choice.Label())
		}
		return ExitOK
	}
}
