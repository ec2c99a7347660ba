package live

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorCursor  = lipgloss.Color("212")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorTimer   = lipgloss.Color("220")
	colorAlert   = lipgloss.Color("203")
)

// renderTitle renders the application banner.
func renderTitle(m Model) string {
	line := "Quiz Runner"
	if m.opts.Source != "" {
		line += " | " + filepath.Base(m.opts.Source)
	}
	if m.opts.NoColor {
		return line
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Render(line)
}

// renderStart renders the chapter picker and shuffle toggles.
func renderStart(m Model) string {
	lines := []string{"", "Select chapter:"}
	for i, choice := range m.choices {
		label := fmt.Sprintf("%s (%d)", choice.Label(), choice.Count)
		if i == m.chapterCursor {
			lines = append(lines, stylize("> "+label, m.opts.NoColor, colorCursor))
			continue
		}
		if choice.Count == 0 {
			label = stylize(label, m.opts.NoColor, colorMuted)
		}
		lines = append(lines, "  "+label)
	}
	lines = append(lines,
		"",
		formatSelectBox(question.TypeMultiple, m.shuffleQuestions)+" Randomize question order",
		formatSelectBox(question.TypeMultiple, m.shuffleOptions)+" Randomize answer order",
	)
	if m.chapterCursor < len(m.choices) {
		choice := m.choices[m.chapterCursor]
		info := fmt.Sprintf("Chapter: %s   |   Questions: %d", choice.Chapter, choice.Count)
		lines = append(lines, "", stylize(info, m.opts.NoColor, colorMuted))
	}
	return strings.Join(lines, "\n")
}

// renderQuiz renders the current question, or the marked question just
// submitted while feedback is showing.
func renderQuiz(m Model) string {
	index, total := m.session.Position()
	var (
		q     question.Question
		marks []quiz.Mark
		show  bool
	)
	if m.feedback != nil {
		q, marks, show = m.feedback.question, m.feedback.marks, true
		index--
	} else {
		current, options, ok := m.session.Current()
		if !ok {
			return renderStatusBar(m, question.Question{}, index, total)
		}
		q = current
		marks = quiz.MarkOptions(options, m.answer.selection)
		show = m.answer.revealed
	}

	lines := []string{renderStatusBar(m, q, index, total), "", renderWrapped(m, q.Text)}
	lines = append(lines, stylize(formatTypeHint(q.Type), m.opts.NoColor, colorMuted), "")
	if len(marks) == 0 {
		lines = append(lines, "(No answers available)")
	}
	for i, mark := range marks {
		lines = append(lines, renderOption(m, q.Type, i, mark, show))
	}
	if m.feedback != nil {
		lines = append(lines, "", fmt.Sprintf("Points: %s", formatPoints(m.feedback.record.Points)))
	}
	return strings.Join(lines, "\n")
}

// renderStatusBar renders chapter, question id, position, and countdown.
func renderStatusBar(m Model, q question.Question, index, total int) string {
	settings := m.session.Settings()
	left := fmt.Sprintf("Chapter: %s   |   QID: %s   %s", settings.Chapter, q.ID, formatPosition(index, total))
	timer := "Time: " + formatClock(m.session.Remaining(m.now))
	if m.session.Expired() {
		timer = "Time's up"
	}
	return left + "   " + stylize(timer, m.opts.NoColor, colorTimer)
}

// renderOption renders one option row with cursor, box, and marks.
func renderOption(m Model, qtype question.Type, index int, mark quiz.Mark, show bool) string {
	cursor := "  "
	if m.feedback == nil && m.screen == screenQuiz && index == m.answer.cursor {
		cursor = "> "
	}
	text := mark.Option.Text
	if show {
		text = formatMark(mark)
	}
	line := fmt.Sprintf("%s%s %d. %s", cursor, formatSelectBox(qtype, mark.Selected), index+1, text)
	switch {
	case show && mark.Correct():
		return stylize(line, m.opts.NoColor, colorCorrect)
	case show && mark.WrongPick():
		return stylize(line, m.opts.NoColor, colorWrong)
	case cursor != "  ":
		return stylize(line, m.opts.NoColor, colorCursor)
	}
	return line
}

// renderReview renders one replayed question with correctness marks.
func renderReview(m Model) string {
	if len(m.review) == 0 {
		return "Nothing to review."
	}
	item := m.review[m.reviewIndex]
	header := fmt.Sprintf("Review   |   Chapter: %s   |   QID: %s   %s",
		m.session.Settings().Chapter, item.Question.ID, formatPosition(m.reviewIndex, len(m.review)))
	lines := []string{stylize(header, m.opts.NoColor, colorTitle), "", renderWrapped(m, item.Question.Text), ""}
	for i, mark := range item.Marks {
		lines = append(lines, renderOption(m, item.Question.Type, i, mark, true))
	}
	lines = append(lines, "")
	if item.Answered {
		answer := item.Record.Selection.String()
		if answer == "" {
			answer = "none"
		}
		lines = append(lines, fmt.Sprintf("Your answer: %s   |   Points: %s", answer, formatPoints(item.Record.Points)))
	} else {
		lines = append(lines, stylize("Not answered", m.opts.NoColor, colorMuted))
	}
	return strings.Join(lines, "\n")
}

// renderResults renders the end-of-quiz summary and breakdown table.
func renderResults(m Model) string {
	s := m.summary
	lines := []string{
		"",
		stylize("Quiz Complete", m.opts.NoColor, colorTitle),
		"Chapter: " + s.Chapter,
		fmt.Sprintf("Score: %s / %d", formatScore(s.Score), s.Total),
		fmt.Sprintf("Attempted: %d   |   Fully correct: %d", s.Attempted, s.Correct),
		"Time: " + formatElapsed(s.Elapsed),
	}
	if s.Expired {
		lines = append(lines, stylize("Time expired before the last question.", m.opts.NoColor, colorAlert))
	}
	lines = append(lines, "", m.results.View())
	return strings.Join(lines, "\n")
}

// renderOverlay renders the active modal as a bordered box.
func renderOverlay(m Model) string {
	var text string
	switch m.overlay {
	case overlayConfirmEnd:
		text = "End quiz now and view results? (y/n)"
	case overlayConfirmBack:
		text = "Go back to start? This will reset progress. (y/n)"
	case overlayTimeUp:
		text = "Time's up! Press r to review your answers or enter for the results."
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	if !m.opts.NoColor {
		style = style.BorderForeground(colorAlert)
	}
	return style.Render(text)
}

// renderWrapped wraps question text to the terminal width.
func renderWrapped(m Model, text string) string {
	if m.width <= 4 {
		return text
	}
	return lipgloss.NewStyle().Width(m.width - 2).Render(text)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
