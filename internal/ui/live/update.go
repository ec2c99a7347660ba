package live

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
)

// onTick refreshes the countdown and handles budget expiry.
func (m Model) onTick(now time.Time) Model {
	m.now = now
	if !m.session.Tick(now) {
		return m
	}
	m.feedback = nil
	if m.screen == screenReview {
		m.notice = "Time's up. Leaving review shows the results."
		return m
	}
	m.overlay = overlayTimeUp
	m.notice = ""
	return m
}

// onAdvance ends submit feedback and moves on.
func (m Model) onAdvance(msg advanceMsg) Model {
	if m.feedback == nil || m.feedback.seq != msg.seq {
		return m
	}
	m.feedback = nil
	m.answer = answerState{}
	if m.session.Mode() == quiz.ModeFinished {
		return m.showResults()
	}
	return m
}

func (m Model) updateStart(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.chapterCursor > 0 {
			m.chapterCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.chapterCursor < len(m.choices)-1 {
			m.chapterCursor++
		}
	case key.Matches(msg, m.keys.ShuffleQ):
		m.shuffleQuestions = !m.shuffleQuestions
	case key.Matches(msg, m.keys.ShuffleOpts):
		m.shuffleOptions = !m.shuffleOptions
	case key.Matches(msg, m.keys.Start):
		return m.start(), nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) start() Model {
	chapter := question.AllChapters
	if m.chapterCursor < len(m.choices) {
		chapter = m.choices[m.chapterCursor].Chapter
	}
	err := m.session.Start(quiz.Settings{
		Chapter:            chapter,
		ShuffleQuestions:   m.shuffleQuestions,
		ShuffleOptions:     m.shuffleOptions,
		SecondsPerQuestion: m.opts.SecondsPerQuestion,
	})
	if errors.Is(err, question.ErrNoQuestions) {
		m.notice = "No questions found for: " + chapter
		return m
	}
	if err != nil {
		m.notice = err.Error()
		return m
	}
	m.screen = screenQuiz
	m.answer = answerState{}
	m.feedback = nil
	m.notice = ""
	m.now = m.opts.Now()
	return m
}

func (m Model) updateQuiz(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.feedback != nil {
		return m, nil
	}
	q, options, ok := m.session.Current()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.answer.cursor > 0 {
			m.answer.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.answer.cursor < len(options)-1 {
			m.answer.cursor++
		}
	case key.Matches(msg, m.keys.Choose):
		index := int(msg.String()[0] - '1')
		if index < len(options) {
			m.answer.cursor = index
			m.answer = m.answer.choose(q.Type, options[index].Value)
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.answer.cursor < len(options) {
			m.answer = m.answer.choose(q.Type, options[m.answer.cursor].Value)
		}
	case key.Matches(msg, m.keys.Submit):
		return m.submit(q, options)
	case key.Matches(msg, m.keys.Skip):
		if err := m.session.Skip(); err != nil {
			return m.rejected(err), nil
		}
		m.answer = answerState{}
		m.notice = ""
		if m.session.Mode() == quiz.ModeFinished {
			return m.showResults(), nil
		}
	case key.Matches(msg, m.keys.Previous):
		if !m.session.Previous() {
			m.notice = "Already at the first question."
			return m, nil
		}
		m.answer = answerState{}
		m.notice = ""
	case key.Matches(msg, m.keys.Reveal):
		m.answer.revealed = true
	case key.Matches(msg, m.keys.Review):
		return m.beginReview(), nil
	case key.Matches(msg, m.keys.End):
		m.overlay = overlayConfirmEnd
	case key.Matches(msg, m.keys.Back):
		m.overlay = overlayConfirmBack
	}
	return m, nil
}

func (m Model) submit(q question.Question, options []question.Option) (Model, tea.Cmd) {
	record, err := m.session.Submit(m.answer.selection)
	if err != nil {
		return m.rejected(err), nil
	}
	m.notice = ""
	m.seq++
	m.feedback = &feedback{
		seq:      m.seq,
		question: q,
		marks:    quiz.MarkOptions(options, record.Selection),
		record:   record,
	}
	if m.opts.AutoAdvance == 0 {
		return m.onAdvance(advanceMsg{seq: m.seq}), nil
	}
	return m, advanceAfter(m.opts.AutoAdvance, m.seq)
}

// rejected reports a refused submit or skip. A deadline passed between ticks
// shows the same overlay as a timer expiry.
func (m Model) rejected(err error) Model {
	if m.session.Expired() {
		m.feedback = nil
		m.overlay = overlayTimeUp
		m.notice = ""
		return m
	}
	m.notice = err.Error()
	return m
}

func (m Model) beginReview() Model {
	if err := m.session.BeginReview(); err != nil {
		if errors.Is(err, quiz.ErrNothingToReview) {
			m.notice = "No recorded answers to review."
		} else {
			m.notice = err.Error()
		}
		return m
	}
	m.review = m.session.Review()
	m.reviewIndex = 0
	m.screen = screenReview
	m.overlay = overlayNone
	m.notice = ""
	return m
}

func (m Model) updateReview(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Next):
		if m.reviewIndex < len(m.review)-1 {
			m.reviewIndex++
			m.notice = ""
		} else {
			m.notice = "End of review."
		}
	case key.Matches(msg, m.keys.Prior):
		if m.reviewIndex > 0 {
			m.reviewIndex--
			m.notice = ""
		}
	case key.Matches(msg, m.keys.LeaveReview):
		m.session.EndReview()
		m.review = nil
		m.notice = ""
		if m.session.Mode() == quiz.ModeFinished {
			return m.showResults()
		}
		m.screen = screenQuiz
	}
	return m
}

func (m Model) updateResults(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.Back):
		return m.toStart(), nil
	case key.Matches(msg, m.keys.Review):
		return m.beginReview(), nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateOverlay(msg tea.KeyMsg) Model {
	switch m.overlay {
	case overlayConfirmEnd:
		if key.Matches(msg, m.keys.Confirm) {
			m.session.End()
			return m.showResults()
		}
		if key.Matches(msg, m.keys.Cancel) {
			m.overlay = overlayNone
		}
	case overlayConfirmBack:
		if key.Matches(msg, m.keys.Confirm) {
			return m.toStart()
		}
		if key.Matches(msg, m.keys.Cancel) {
			m.overlay = overlayNone
		}
	case overlayTimeUp:
		if key.Matches(msg, m.keys.Review) {
			m = m.beginReview()
			if m.screen != screenReview {
				return m.showResults()
			}
			return m
		}
		if key.Matches(msg, m.keys.Dismiss) {
			return m.showResults()
		}
	}
	return m
}

func (m Model) showResults() Model {
	m.summary = m.session.Result()
	m.results.SetRows(resultRows(m.session.Review()))
	m.screen = screenResults
	m.overlay = overlayNone
	m.feedback = nil
	return m
}

func (m Model) toStart() Model {
	if m.screen == screenResults {
		m.notice = fmt.Sprintf("Last result: %s / %d", formatScore(m.summary.Score), m.summary.Total)
	} else {
		m.notice = ""
	}
	m.session.Reset()
	m.screen = screenStart
	m.overlay = overlayNone
	m.answer = answerState{}
	m.feedback = nil
	m.review = nil
	return m
}
