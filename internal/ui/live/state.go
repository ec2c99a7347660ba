package live

import (
	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
)

// screen is the page the model renders.
type screen int

const (
	screenStart screen = iota
	screenQuiz
	screenReview
	screenResults
)

// overlay is a modal drawn over the current screen.
type overlay int

const (
	overlayNone overlay = iota
	overlayConfirmEnd
	overlayConfirmBack
	overlayTimeUp
)

// feedback holds the marked options of a just-submitted question while the
// auto-advance delay runs.
type feedback struct {
	seq      int
	question question.Question
	marks    []quiz.Mark
	record   quiz.Record
}

// answerState tracks in-progress input for the current question.
type answerState struct {
	cursor    int
	selection quiz.Selection
	revealed  bool
}

// choose applies a pick of option value under the question type rules:
// single-answer replaces the selection, multi-answer toggles it.
func (a answerState) choose(qtype question.Type, value string) answerState {
	if qtype == question.TypeMultiple {
		a.selection = a.selection.Toggle(value)
		return a
	}
	a.selection = quiz.NewSelection(value)
	return a
}
