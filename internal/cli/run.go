package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"quizrunner/internal/logging"
	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
	"quizrunner/internal/ui/live"
	"quizrunner/internal/ui/plain"
	"quizrunner/internal/workbook"
)

// runInput is the reader used by the plain runner; tests replace it.
var runInput io.Reader = os.Stdin

// runQuiz builds the handler for the run command.
func runQuiz(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		filePath := flags.String("file", "", "Path to the question workbook (default: from config)")
		configPath := flags.String("config", "", "Path to quizrunner.yml (default: next to the executable)")
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		chapter := flags.String("chapter", "", "Chapter to quiz on (plain UI skips the picker)")
		seconds := flags.Int("seconds", 0, "Seconds per question (default: from config)")
		logPath := flags.String("log", "", "Write a JSON session log to this file")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		env, err := loadEnvironment(*configPath, *filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Config error:\n%v\n", err)
			return ExitError
		}
		if *seconds < 0 {
			fmt.Fprintln(stderr, "invalid arguments: --seconds must be >= 0")
			return ExitUsage
		}
		if *seconds > 0 {
			env.cfg.SecondsPerQuestion = *seconds
		}
		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logCfg := env.cfg.Log
		if strings.TrimSpace(*logPath) != "" {
			logCfg.File = *logPath
		}
		logger, closer, err := logging.New(logCfg)
		if err != nil {
			fmt.Fprintf(stderr, "Log error: %v\n", err)
			return ExitError
		}
		defer closer.Close()
		defer logger.Sync()

		bank, code, ok := loadBank(env, logger, stderr)
		if !ok {
			return code
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		session := quiz.NewSession(bank, quiz.WithObserver(logging.NewSessionLogger(logger)))
		if decision.useLive {
			err = live.Run(ctx, session, bank, live.Options{
				NoColor:            *noColor,
				AutoAdvance:        env.cfg.AdvanceDelay(),
				SecondsPerQuestion: env.cfg.SecondsPerQuestion,
				ShuffleQuestions:   env.cfg.ShuffleQuestions,
				ShuffleOptions:     env.cfg.ShuffleOptions,
				Catalog:            env.cfg.Catalog(),
				Source:             env.workbookPath,
			}, nil, stdout)
		} else {
			err = plain.Run(ctx, session, bank, plain.Options{
				Catalog:            env.cfg.Catalog(),
				Chapter:            *chapter,
				SecondsPerQuestion: env.cfg.SecondsPerQuestion,
				ShuffleQuestions:   env.cfg.ShuffleQuestions,
				ShuffleOptions:     env.cfg.ShuffleOptions,
			}, runInput, stdout)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("quiz ui failed", zap.Error(err))
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadBank reads the workbook, reporting the two fatal load failures.
func loadBank(env environment, logger *zap.Logger, stderr io.Writer) (*question.Bank, int, bool) {
	bank, layout, err := workbook.Load(env.workbookPath, env.cfg.Catalog())
	if err != nil {
		logger.Error("workbook load failed", zap.String("path", env.workbookPath), zap.Error(err))
		if errors.Is(err, workbook.ErrNotFound) {
			fmt.Fprintf(stderr, "File not found: %s\nPlace the workbook next to quizrunner or pass --file.\n", env.workbookPath)
			return nil, ExitError, false
		}
		fmt.Fprintf(stderr, "Load error: %v\n", err)
		return nil, ExitError, false
	}
	var verr *question.ValidationError
	if err := question.Check(bank); errors.As(err, &verr) {
		for _, issue := range verr.Issues {
			logger.Warn("workbook data issue", zap.String("field", issue.Field), zap.String("issue", issue.Message))
		}
	}
	logger.Info("workbook loaded",
		zap.String("path", env.workbookPath),
		zap.String("layout", string(layout)),
		zap.Int("questions", len(bank.Questions)),
		zap.Int("options", len(bank.Options)),
	)
	return bank, ExitOK, true
}

// parseFlags parses command flags and rejects positional arguments.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
