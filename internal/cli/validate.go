package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"quizrunner/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		filePath := flags.String("file", "", "Path to the question workbook (default: from config)")
		configPath := flags.String("config", "", "Path to quizrunner.yml (default: next to the executable)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		env, err := loadEnvironment(*configPath, *filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		bank, code, ok := loadBank(env, zap.NewNop(), stderr)
		if !ok {
			return code
		}

		fmt.Fprintf(stdout, "Workbook: %s\n", env.workbookPath)
		fmt.Fprintf(stdout, "Questions: %d | Options: %d | Chapters: %d\n",
			len(bank.Questions), len(bank.Options), len(bank.Chapters()))

		if err := question.Check(bank); err != nil {
			var verr *question.ValidationError
			if !errors.As(err, &verr) {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
				return ExitError
			}
			fmt.Fprintf(stderr, "Validation failed: %d issue(s)\n", len(verr.Issues))
			for _, issue := range verr.Issues {
				fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
			}
			return ExitError
		}
		fmt.Fprintln(stdout, "Workbook OK")
		return ExitOK
	}
}
