package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

type uiMode string

const (
	uiAuto  uiMode = "auto"
	uiLive  uiMode = "live"
	uiPlain uiMode = "plain"
)

const ttyFallbackWarning = "Live UI requested but stdout is not a TTY; falling back to plain prompts."

// uiModeDecision says which front end drives the session.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY. Tests replace it.
var isTerminal = writerIsTerminal

func parseUIMode(raw string) (uiMode, error) {
	switch mode := uiMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return uiAuto, nil
	case uiAuto, uiLive, uiPlain:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", raw)
	}
}

// resolveUIMode picks the full-screen UI or the line runner. A live request
// without a terminal degrades to plain prompts with a warning.
func resolveUIMode(raw string, stdout io.Writer) (uiModeDecision, error) {
	mode, err := parseUIMode(raw)
	if err != nil {
		return uiModeDecision{}, err
	}
	if mode == uiPlain {
		return uiModeDecision{}, nil
	}
	tty := isTerminal(stdout)
	decision := uiModeDecision{useLive: tty}
	if mode == uiLive && !tty {
		decision.warning = ttyFallbackWarning
	}
	return decision, nil
}

func writerIsTerminal(w io.Writer) bool {
	fder, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fder.Fd()))
}
