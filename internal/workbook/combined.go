package workbook

import (
	"fmt"
	"slices"
	"strings"

	"quizrunner/internal/question"
)

// optionLetters are the per-option columns of the combined layout.
var optionLetters = []string{"A", "B", "C", "D", "E"}

// parseCombined reads a single sheet holding questions and options together.
func parseCombined(s sheet, catalog question.Catalog) *question.Bank {
	colChapter := s.column("KnowledgeArea", "Knowledge Area")
	colID := s.column("Question Number", "QuestionNumber", "QNumber")
	colText := s.column("Question")
	colCorrect := s.column("Correct", "Answer")
	colSection := s.column("DMBOK Section", "DMBOKSection")
	colPage := s.column("DMBOK Page", "DMBOKPage")

	colOptions := make(map[string]int, len(optionLetters))
	for _, letter := range optionLetters {
		colOptions[letter] = s.column(letter, letter+".")
	}

	var questions []question.Question
	var options []question.Option
	for i, row := range s.rows {
		if blankRow(row) {
			continue
		}
		id := cell(row, colID)
		if id == "" {
			id = fmt.Sprintf("Q%d", i+1)
		}

		section := cell(row, colSection)
		chapter := question.Unspecified
		if raw := cell(row, colChapter); raw != "" {
			chapter = question.NormalizeChapter(raw, catalog)
		} else if section != "" {
			chapter = question.NormalizeChapter(section, catalog)
		}

		correct := question.ExtractCorrectLetters(cell(row, colCorrect))
		qtype := question.TypeSingle
		if len(correct) > 1 {
			qtype = question.TypeMultiple
		}

		questions = append(questions, question.Question{
			ID:      id,
			Chapter: chapter,
			Text:    cell(row, colText),
			Type:    qtype,
		})

		reference := joinReference(section, cell(row, colPage))
		for _, letter := range optionLetters {
			text := cell(row, colOptions[letter])
			if text == "" {
				continue
			}
			options = append(options, question.Option{
				QuestionID: id,
				Text:       text,
				Value:      letter,
				Correct:    slices.Contains(correct, letter),
				Reference:  reference,
				Shuffle:    true,
			})
		}
	}
	return question.NewBank(questions, options)
}

func joinReference(parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			present = append(present, part)
		}
	}
	return strings.Join(present, " | ")
}
