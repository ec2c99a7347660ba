package workbook

import (
	"fmt"

	"quizrunner/internal/question"
)

// parseSplit reads the "ques" and "ans" sheets of the split layout.
func parseSplit(ques, ans sheet, catalog question.Catalog) *question.Bank {
	colID := ques.column("qid")
	colChapter := ques.column("chapter")
	colText := ques.column("question")
	colType := ques.column("type")

	questions := make([]question.Question, 0, len(ques.rows))
	for i, row := range ques.rows {
		if blankRow(row) {
			continue
		}
		id := cell(row, colID)
		if colID < 0 || id == "" {
			id = fmt.Sprintf("Q%d", i+1)
		}
		questions = append(questions, question.Question{
			ID:      id,
			Chapter: question.NormalizeChapter(cell(row, colChapter), catalog),
			Text:    cell(row, colText),
			Type:    question.ParseType(cell(row, colType)),
		})
	}

	ansID := ans.column("qid")
	ansText := ans.column("options", "option")
	ansValue := ans.column("value")
	ansPoint := ans.column("point")
	ansRandomize := ans.column("randomize")
	ansRef := ans.column("ref", "reference")

	positions := map[string]int{}
	options := make([]question.Option, 0, len(ans.rows))
	for _, row := range ans.rows {
		if blankRow(row) {
			continue
		}
		qid := cell(row, ansID)
		position := positions[qid]
		positions[qid] = position + 1
		value := cell(row, ansValue)
		if value == "" {
			value = optionLetter(position)
		}
		options = append(options, question.Option{
			QuestionID: qid,
			Text:       cell(row, ansText),
			Value:      value,
			Correct:    question.ParsePoint(cell(row, ansPoint)) == 1,
			Reference:  cell(row, ansRef),
			Shuffle:    shuffleAllowed(cell(row, ansRandomize)),
		})
	}
	return question.NewBank(questions, options)
}

// shuffleAllowed treats a blank randomize cell as permission to move.
func shuffleAllowed(value string) bool {
	if value == "" {
		return true
	}
	return question.ParsePoint(value) != 0
}

// optionLetter names the option at a zero-based position: A, B, ... Z, O27...
func optionLetter(position int) string {
	if position >= 0 && position < 26 {
		return string(rune('A' + position))
	}
	return fmt.Sprintf("O%d", position+1)
}
