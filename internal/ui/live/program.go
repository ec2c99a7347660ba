package live

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
)

// Run shows the quiz until the user quits or ctx is cancelled. A nil input
// reads from the terminal.
func Run(ctx context.Context, session *quiz.Session, bank *question.Bank, opts Options, in io.Reader, out io.Writer) error {
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	program := tea.NewProgram(NewModel(session, bank, opts), programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
