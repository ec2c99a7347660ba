package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches a command line. No arguments starts a quiz.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return findCommand("run").Run(nil, stdout, stderr)
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizrunner [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nWithout a command quizrunner runs \"run\".")
	fmt.Fprintln(w, "Use \"quizrunner <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("run", "Take a quiz from the workbook", []string{
		"quizrunner run [--file <xlsx>] [--config <yml>] [--ui auto|live|plain] [--no-color]",
		"               [--chapter <name>] [--seconds <n>] [--log <path>]",
	}, runQuiz),
	command("validate", "Check the workbook and report data issues", []string{
		"quizrunner validate [--file <xlsx>] [--config <yml>]",
	}, runValidate),
	command("chapters", "List chapters and question counts", []string{
		"quizrunner chapters [--file <xlsx>] [--config <yml>]",
	}, runChapters),
	command("init", "Write a default quizrunner.yml", []string{
		"quizrunner init [--config <yml>]",
	}, runInit),
}
