//go:build cucumber

package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
)

// TestUIModeScenarios runs the UI mode feature scenarios.
func TestUIModeScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "ui-mode", "ui-mode.feature")
	suite := godog.TestSuite{
		Name:                "ui-mode",
		ScenarioInitializer: InitializeUIModeScenario,
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

// InitializeUIModeScenario wires steps for UI mode scenarios.
func InitializeUIModeScenario(ctx *godog.ScenarioContext) {
	state := &uiModeScenarioState{}
	orig := isTerminal
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = uiModeScenarioState{}
		isTerminal = func(io.Writer) bool { return state.isTTY }
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		isTerminal = orig
		return ctx, nil
	})

	ctx.Step(`^stdout is a TTY$`, func() { state.isTTY = true })
	ctx.Step(`^stdout is not a TTY$`, func() { state.isTTY = false })
	ctx.Step(`^I choose the "([^"]+)" UI$`, state.whenChoose)
	ctx.Step(`^the full-screen UI is used$`, state.thenLive)
	ctx.Step(`^plain prompts are used$`, state.thenPlain)
	ctx.Step(`^a fallback warning is shown$`, state.thenWarning)
	ctx.Step(`^no warning is shown$`, state.thenNoWarning)
	ctx.Step(`^the UI mode is rejected$`, state.thenRejected)
}

type uiModeScenarioState struct {
	isTTY    bool
	decision uiModeDecision
	err      error
}

func (s *uiModeScenarioState) whenChoose(mode string) {
	s.decision, s.err = resolveUIMode(mode, nil)
}

func (s *uiModeScenarioState) thenLive() error {
	if s.err != nil || !s.decision.useLive {
		return fmt.Errorf("expected live UI, got %+v (err %v)", s.decision, s.err)
	}
	return nil
}

func (s *uiModeScenarioState) thenPlain() error {
	if s.err != nil || s.decision.useLive {
		return fmt.Errorf("expected plain prompts, got %+v (err %v)", s.decision, s.err)
	}
	return nil
}

func (s *uiModeScenarioState) thenWarning() error {
	if s.decision.warning == "" {
		return fmt.Errorf("expected fallback warning")
	}
	return nil
}

func (s *uiModeScenarioState) thenNoWarning() error {
	if s.decision.warning != "" {
		return fmt.Errorf("expected no warning, got %q", s.decision.warning)
	}
	return nil
}

func (s *uiModeScenarioState) thenRejected() error {
	if s.err == nil {
		return fmt.Errorf("expected invalid mode error")
	}
	return nil
}
