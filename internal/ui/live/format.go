package live

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
)

// formatClock renders a countdown as MM:SS, rounding partial seconds up.
func formatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int((remaining + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// formatScore renders a session score with one decimal.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// formatPoints renders per-question credit without trailing zeros.
func formatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}

// formatElapsed renders a per-question or session duration.
func formatElapsed(d time.Duration) string {
	return d.Round(time.Second).String()
}

// formatPosition renders the 1-based progress through the session.
func formatPosition(index, total int) string {
	return fmt.Sprintf("(%d of %d)", index+1, total)
}

// formatTypeHint describes how many options may be picked.
func formatTypeHint(qtype question.Type) string {
	if qtype == question.TypeMultiple {
		return "Select all that apply"
	}
	return "Select one answer"
}

// formatSelectBox renders the radio or checkbox for an option.
func formatSelectBox(qtype question.Type, selected bool) string {
	switch {
	case qtype == question.TypeMultiple && selected:
		return "[x]"
	case qtype == question.TypeMultiple:
		return "[ ]"
	case selected:
		return "(•)"
	default:
		return "( )"
	}
}

// formatMark appends the correctness annotations and reference to an option.
func formatMark(mark quiz.Mark) string {
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

// formatCorrect lists the correct option values of marked options.
func formatCorrect(marks []quiz.Mark) string {
	var values []string
	for _, mark := range marks {
		if mark.Correct() {
			values = append(values, mark.Option.Value)
		}
	}
	return strings.Join(values, ", ")
}

// truncate shortens text to limit runes with an ellipsis.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if limit <= 3 || len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}
