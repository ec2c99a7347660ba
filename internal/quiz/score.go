package quiz

import (
	"strings"

	"quizrunner/internal/question"
)

// Selection is the set of option values chosen for one question, in the
// order they were picked.
type Selection []string

// NewSelection builds a selection, dropping blanks and duplicates.
func NewSelection(values ...string) Selection {
	var out Selection
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || out.Contains(value) {
			continue
		}
		out = append(out, value)
	}
	return out
}

// Empty reports whether nothing was selected.
func (s Selection) Empty() bool {
	return len(s) == 0
}

// Contains reports whether a value is selected.
func (s Selection) Contains(value string) bool {
	for _, selected := range s {
		if selected == value {
			return true
		}
	}
	return false
}

// Toggle adds a value when absent and removes it otherwise.
func (s Selection) Toggle(value string) Selection {
	if !s.Contains(value) {
		return append(s.clone(), value)
	}
	out := make(Selection, 0, len(s)-1)
	for _, selected := range s {
		if selected != value {
			out = append(out, selected)
		}
	}
	return out
}

// String renders the selection as a comma separated list.
func (s Selection) String() string {
	return strings.Join(s, ", ")
}

func (s Selection) clone() Selection {
	out := make(Selection, len(s))
	copy(out, s)
	return out
}

// Score returns the credit in [0, 1] earned by a selection.
//
// Single-answer questions earn 1 when the selected value is correct.
// Multi-answer questions earn |selected ∩ correct| / |correct|; wrong extras
// earn nothing and cost nothing.
func Score(qtype question.Type, correct []string, selection Selection) float64 {
	correctSet := make(map[string]struct{}, len(correct))
	for _, value := range correct {
		correctSet[value] = struct{}{}
	}
	selection = NewSelection(selection...)
	if len(correctSet) == 0 || selection.Empty() {
		return 0
	}

	if qtype != question.TypeMultiple {
		if _, ok := correctSet[selection[0]]; ok {
			return 1
		}
		return 0
	}

	matches := 0
	for _, value := range selection {
		if _, ok := correctSet[value]; ok {
			matches++
		}
	}
	return float64(matches) / float64(len(correctSet))
}
