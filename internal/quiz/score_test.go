package quiz

import (
	"math"
	"testing"

	"quizrunner/internal/question"
)

// TestScore covers single and multi-answer credit.
func TestScore(t *testing.T) {
	cases := []struct {
		name      string
		qtype     question.Type
		correct   []string
		selection Selection
		want      float64
	}{
		{name: "single correct", qtype: question.TypeSingle, correct: []string{"B"}, selection: NewSelection("B"), want: 1},
		{name: "single wrong", qtype: question.TypeSingle, correct: []string{"B"}, selection: NewSelection("A"), want: 0},
		{name: "single empty", qtype: question.TypeSingle, correct: []string{"B"}, selection: nil, want: 0},
		{name: "single any correct value", qtype: question.TypeSingle, correct: []string{"A", "C"}, selection: NewSelection("C"), want: 1},
		{name: "multi partial", qtype: question.TypeMultiple, correct: []string{"A", "C"}, selection: NewSelection("A", "B"), want: 0.5},
		{name: "multi full", qtype: question.TypeMultiple, correct: []string{"A", "C"}, selection: NewSelection("C", "A"), want: 1},
		{name: "multi extras not penalised", qtype: question.TypeMultiple, correct: []string{"A", "C"}, selection: NewSelection("A", "B", "C", "D"), want: 1},
		{name: "multi none right", qtype: question.TypeMultiple, correct: []string{"A", "C"}, selection: NewSelection("B"), want: 0},
		{name: "multi duplicates ignored", qtype: question.TypeMultiple, correct: []string{"A", "B", "C"}, selection: Selection{"A", "A", "A"}, want: 1.0 / 3},
		{name: "multi empty", qtype: question.TypeMultiple, correct: []string{"A"}, selection: Selection{}, want: 0},
		{name: "no correct options", qtype: question.TypeMultiple, correct: nil, selection: NewSelection("A"), want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.qtype, tc.correct, tc.selection)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

// TestScoreBounds checks every subset of a five-option question stays in range.
func TestScoreBounds(t *testing.T) {
	values := []string{"A", "B", "C", "D", "E"}
	correct := []string{"A", "C", "E"}
	for mask := 0; mask < 1<<len(values); mask++ {
		var selection Selection
		overlap := 0
		for i, value := range values {
			if mask&(1<<i) == 0 {
				continue
			}
			selection = append(selection, value)
			if i%2 == 0 {
				overlap++
			}
		}
		multi := Score(question.TypeMultiple, correct, selection)
		if want := float64(overlap) / 3; math.Abs(multi-want) > 1e-9 {
			t.Fatalf("mask %05b: expected %v, got %v", mask, want, multi)
		}
		single := Score(question.TypeSingle, correct, selection)
		if single != 0 && single != 1 {
			t.Fatalf("mask %05b: single score %v not in {0,1}", mask, single)
		}
	}
}

// TestSelectionToggle verifies toggling adds and removes values.
func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	s = s.Toggle("A")
	s = s.Toggle("C")
	s = s.Toggle("A")
	if len(s) != 1 || s[0] != "C" {
		t.Fatalf("expected [C], got %v", s)
	}
	if got := NewSelection(" A ", "", "A", "B").String(); got != "A, B" {
		t.Fatalf("unexpected selection %q", got)
	}
}
