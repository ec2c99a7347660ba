package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizrunner/internal/quiz"
)

// resultColumns sizes the breakdown table for the terminal width.
func resultColumns(width int) []table.Column {
	const fixed = 4 + 8 + 10 + 10 + 7 + 7
	textWidth := max(width-fixed-12, 20)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "QID", Width: 8},
		{Title: "Question", Width: textWidth},
		{Title: "Answer", Width: 10},
		{Title: "Correct", Width: 10},
		{Title: "Points", Width: 7},
		{Title: "Time", Width: 7},
	}
}

// tableStyles returns table styles for the results screen.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(true).Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// resultRows converts review items into breakdown rows.
func resultRows(items []quiz.ReviewItem) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		answer, points, elapsed := "skipped", "0", ""
		if item.Answered {
			answer = item.Record.Selection.String()
			if answer == "" {
				answer = "none"
			}
			points = formatPoints(item.Record.Points)
			elapsed = formatElapsed(item.Record.Elapsed)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(item.Index + 1),
			item.Question.ID,
			truncate(item.Question.Text, 60),
			answer,
			formatCorrect(item.Marks),
			points,
			elapsed,
		})
	}
	return rows
}
