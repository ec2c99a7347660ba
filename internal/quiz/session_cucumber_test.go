//go:build cucumber

package quiz

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"quizrunner/internal/question"
	"quizrunner/internal/testutil"
)

// TestSessionScenarios runs the quiz session feature scenarios.
func TestSessionScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "quiz-session", "session.feature")
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: InitializeSessionScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps for session scenarios.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a question bank:$`, state.givenBank)
	ctx.Step(`^I start a quiz for "([^"]+)"$`, state.whenStart)
	ctx.Step(`^I start a quiz for "([^"]+)" with (\d+) seconds per question$`, state.whenStartTimed)
	ctx.Step(`^I submit "([^"]*)"$`, state.whenSubmit)
	ctx.Step(`^I skip$`, state.whenSkip)
	ctx.Step(`^I go to the previous question$`, state.whenPrevious)
	ctx.Step(`^I review the session (\d+) times$`, state.whenReview)
	ctx.Step(`^(\d+) seconds pass$`, state.whenTimePasses)
	ctx.Step(`^the score is ([\d.]+) out of (\d+)$`, state.thenScore)
	ctx.Step(`^the session is "([^"]+)"$`, state.thenMode)
	ctx.Step(`^there are (\d+) records$`, state.thenRecords)
	ctx.Step(`^the current question is "([^"]+)"$`, state.thenCurrent)
	ctx.Step(`^the session has expired$`, state.thenExpired)
}

type sessionScenarioState struct {
	clock   *testutil.FakeClock
	session *Session
}

// reset clears scenario state.
func (s *sessionScenarioState) reset() {
	s.clock = testutil.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s.session = nil
}

// givenBank builds a bank with A-D options per question.
func (s *sessionScenarioState) givenBank(table *godog.Table) error {
	var questions []question.Question
	var options []question.Option
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		id := row.Cells[0].Value
		questions = append(questions, question.Question{
			ID:      id,
			Chapter: row.Cells[1].Value,
			Text:    "Question " + id,
			Type:    question.ParseType(row.Cells[2].Value),
		})
		correct := question.ExtractCorrectLetters(row.Cells[3].Value)
		for _, letter := range []string{"A", "B", "C", "D"} {
			options = append(options, question.Option{
				QuestionID: id,
				Text:       "Option " + letter,
				Value:      letter,
				Correct:    contains(correct, letter),
				Shuffle:    true,
			})
		}
	}
	s.session = NewSession(question.NewBank(questions, options), WithClock(s.clock))
	return nil
}

func (s *sessionScenarioState) whenStart(chapter string) error {
	return s.session.Start(Settings{Chapter: chapter})
}

func (s *sessionScenarioState) whenStartTimed(chapter string, seconds int) error {
	return s.session.Start(Settings{Chapter: chapter, SecondsPerQuestion: seconds})
}

func (s *sessionScenarioState) whenSubmit(values string) error {
	_, err := s.session.Submit(NewSelection(strings.Split(values, ",")...))
	return err
}

func (s *sessionScenarioState) whenSkip() error {
	return s.session.Skip()
}

func (s *sessionScenarioState) whenPrevious() error {
	if !s.session.Previous() {
		return fmt.Errorf("previous was not possible")
	}
	return nil
}

func (s *sessionScenarioState) whenReview(times int) error {
	for i := 0; i < times; i++ {
		if err := s.session.BeginReview(); err != nil {
			return err
		}
		_ = s.session.Review()
		s.session.EndReview()
	}
	return nil
}

func (s *sessionScenarioState) whenTimePasses(seconds int) error {
	s.clock.Advance(time.Duration(seconds) * time.Second)
	s.session.Tick(s.clock.Now())
	return nil
}

func (s *sessionScenarioState) thenScore(score float64, total int) error {
	summary := s.session.Result()
	if math.Abs(summary.Score-score) > 1e-9 || summary.Total != total {
		return fmt.Errorf("expected %v/%d, got %v/%d", score, total, summary.Score, summary.Total)
	}
	return nil
}

func (s *sessionScenarioState) thenMode(mode string) error {
	if got := s.session.Mode().String(); got != mode {
		return fmt.Errorf("expected mode %s, got %s", mode, got)
	}
	return nil
}

func (s *sessionScenarioState) thenRecords(count int) error {
	if got := len(s.session.Records()); got != count {
		return fmt.Errorf("expected %d records, got %d", count, got)
	}
	return nil
}

func (s *sessionScenarioState) thenCurrent(id string) error {
	current, _, ok := s.session.Current()
	if !ok || current.ID != id {
		return fmt.Errorf("expected current question %s, got %q", id, current.ID)
	}
	return nil
}

func (s *sessionScenarioState) thenExpired() error {
	if !s.session.Expired() {
		return fmt.Errorf("expected session to be expired")
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
