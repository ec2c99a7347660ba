package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
)

// Options configures the line-oriented runner.
type Options struct {
	Catalog            question.Catalog
	Chapter            string
	SecondsPerQuestion int
	ShuffleQuestions   bool
	ShuffleOptions     bool
	Now                func() time.Time
}

// Run asks for a chapter, then presents one question per prompt until the
// session ends, the input closes, or ctx is cancelled.
func Run(ctx context.Context, session *quiz.Session, bank *question.Bank, opts Options, in io.Reader, out io.Writer) error {
	if opts.Catalog == nil {
		opts.Catalog = question.DefaultCatalog()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	r := &runner{session: session, opts: opts, lines: readLines(ctx, in), out: out}

	chapter := opts.Chapter
	if chapter == "" {
		picked, ok := r.pickChapter(ctx, question.Choices(bank, opts.Catalog))
		if !ok {
			return ctx.Err()
		}
		chapter = picked
	}
	err := session.Start(quiz.Settings{
		Chapter:            chapter,
		ShuffleQuestions:   opts.ShuffleQuestions,
		ShuffleOptions:     opts.ShuffleOptions,
		SecondsPerQuestion: opts.SecondsPerQuestion,
	})
	if errors.Is(err, question.ErrNoQuestions) {
		fmt.Fprintf(out, "No questions found for: %s\n", chapter)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nChapter: %s | Questions: %d | Time: %s\n", chapter, len(session.Questions()), clock(session.Budget()))
	return r.loop(ctx)
}

type runner struct {
	session *quiz.Session
	opts    Options
	lines   <-chan string
	out     io.Writer
}

// readLines feeds input lines to a channel so prompts can wait on ctx too.
// The channel closes at EOF or once ctx is done.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return
			}
			select {
			case lines <- strings.TrimSpace(line):
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// readLine waits for the next line. It reports false at EOF or when ctx is
// cancelled; a line racing the cancellation is dropped.
func (r *runner) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-r.lines:
		if !ok || ctx.Err() != nil {
			return "", false
		}
		return line, true
	}
}

// pickChapter lists the picker choices and reads an index. Blank picks all.
func (r *runner) pickChapter(ctx context.Context, choices []question.Choice) (string, bool) {
	fmt.Fprintln(r.out, "Select chapter:")
	for i, choice := range choices {
		fmt.Fprintf(r.out, "  %2d) %s (%d)\n", i, choice.Label(), choice.Count)
	}
	for {
		fmt.Fprint(r.out, "Chapter [0]: ")
		line, ok := r.readLine(ctx)
		if !ok {
			return "", false
		}
		if line == "" {
			return question.AllChapters, true
		}
		index, err := strconv.Atoi(line)
		if err == nil && index >= 0 && index < len(choices) {
			return choices[index].Chapter, true
		}
		fmt.Fprintf(r.out, "Enter a number between 0 and %d.\n", len(choices)-1)
	}
}

func (r *runner) loop(ctx context.Context) error {
	for r.session.Mode() == quiz.ModeRunning {
		if err := ctx.Err(); err != nil {
			r.session.End()
			return err
		}
		if r.session.Tick(r.opts.Now()) {
			break
		}
		q, options, _ := r.session.Current()
		r.printQuestion(q, options)
		fmt.Fprint(r.out, "Answer (A or A,C; blank skip, p previous, r review, q end): ")
		line, ok := r.readLine(ctx)
		if err := ctx.Err(); err != nil {
			r.session.End()
			return err
		}
		if !ok {
			r.session.End()
			break
		}
		if r.session.Tick(r.opts.Now()) {
			break
		}
		r.handle(line, q, options)
	}

	if r.session.Expired() {
		fmt.Fprintln(r.out, "\nTime's up. Entering review.")
		r.printReview()
	}
	r.printSummary()
	return nil
}

func (r *runner) handle(line string, q question.Question, options []question.Option) {
	switch strings.ToLower(line) {
	case "":
		_ = r.session.Skip()
		return
	case "q":
		r.session.End()
		return
	case "p":
		if !r.session.Previous() {
			fmt.Fprintln(r.out, "Already at the first question.")
		}
		return
	case "r":
		if err := r.session.BeginReview(); err != nil {
			fmt.Fprintln(r.out, "No recorded answers to review.")
			return
		}
		r.printReview()
		r.session.EndReview()
		return
	}

	selection, err := parseSelection(line, q.Type, options)
	if err != nil {
		fmt.Fprintf(r.out, "Invalid answer: %v\n", err)
		return
	}
	record, err := r.session.Submit(selection)
	if err != nil {
		if !r.session.Expired() {
			fmt.Fprintln(r.out, err.Error())
		}
		return
	}
	for i, mark := range quiz.MarkOptions(options, record.Selection) {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, describe(mark))
	}
	fmt.Fprintf(r.out, "Points: %s\n", strconv.FormatFloat(record.Points, 'f', -1, 64))
}

// parseSelection maps option numbers or values to a selection.
func parseSelection(line string, qtype question.Type, options []question.Option) (quiz.Selection, error) {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '/' || r == ' ' || r == '\t'
	})
	var values []string
	for _, token := range tokens {
		value, ok := resolveOption(token, options)
		if !ok {
			return nil, fmt.Errorf("unknown option %q", token)
		}
		values = append(values, value)
	}
	selection := quiz.NewSelection(values...)
	if qtype != question.TypeMultiple && len(selection) > 1 {
		return nil, errors.New("pick one option")
	}
	return selection, nil
}

func resolveOption(token string, options []question.Option) (string, bool) {
	for _, option := range options {
		if strings.EqualFold(option.Value, token) {
			return option.Value, true
		}
	}
	if index, err := strconv.Atoi(token); err == nil && index >= 1 && index <= len(options) {
		return options[index-1].Value, true
	}
	return "", false
}

func (r *runner) printQuestion(q question.Question, options []question.Option) {
	index, total := r.session.Position()
	fmt.Fprintf(r.out, "\n[%d/%d] %s (%s) | Time left: %s\n", index+1, total, q.ID, q.Chapter, clock(r.session.Remaining(r.opts.Now())))
	fmt.Fprintln(r.out, q.Text)
	if q.Type == question.TypeMultiple {
		fmt.Fprintln(r.out, "(select all that apply)")
	}
	for _, option := range options {
		fmt.Fprintf(r.out, "  %s. %s\n", option.Value, option.Text)
	}
}

func (r *runner) printReview() {
	for _, item := range r.session.Review() {
		fmt.Fprintf(r.out, "\n[%d] %s: %s\n", item.Index+1, item.Question.ID, item.Question.Text)
		for i, mark := range item.Marks {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, describe(mark))
		}
		if item.Answered {
			fmt.Fprintf(r.out, "Your answer: %s | Points: %s\n", answerText(item.Record.Selection), strconv.FormatFloat(item.Record.Points, 'f', -1, 64))
		} else {
			fmt.Fprintln(r.out, "Not answered")
		}
	}
}

func (r *runner) printSummary() {
	s := r.session.Result()
	fmt.Fprintln(r.out, "\nQuiz Complete")
	fmt.Fprintf(r.out, "Chapter: %s\n", s.Chapter)
	fmt.Fprintf(r.out, "Score: %s / %d\n", strconv.FormatFloat(s.Score, 'f', 1, 64), s.Total)
	fmt.Fprintf(r.out, "Attempted: %d\n", s.Attempted)
}

func describe(mark quiz.Mark) string {
	text := mark.Option.Text
	switch {
	case mark.Correct():
		text += "  ✓ (Correct)"
	case mark.WrongPick():
		text += "  ✘ (Your Answer)"
	}
	if mark.Option.Reference != "" {
		text += "  → " + mark.Option.Reference
	}
	return text
}

func answerText(selection quiz.Selection) string {
	if selection.Empty() {
		return "none"
	}
	return selection.String()
}

// clock renders a duration as MM:SS, rounding partial seconds up.
func clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
