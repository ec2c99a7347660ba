package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet written by WriteWorkbook.
type Sheet struct {
	Name string
	Rows [][]any
}

// WriteWorkbook saves sheets into a new xlsx file under the test temp dir.
func WriteWorkbook(t testing.TB, sheets ...Sheet) string {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()
	for i, s := range sheets {
		if i == 0 {
			if err := file.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := file.NewSheet(s.Name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		for r, row := range s.Rows {
			cellName, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := row
			if err := file.SetSheetRow(s.Name, cellName, &values); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "quiz.xlsx")
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// SampleWorkbook writes a small split-layout bank: two single-answer
// questions in chapter 1 and one multiple-answer question in chapter 2.
func SampleWorkbook(t testing.TB) string {
	t.Helper()
	return WriteWorkbook(t,
		Sheet{Name: "ques", Rows: [][]any{
			{"qid", "chapter", "question", "type"},
			{"Q1", "1", "Who is accountable for data?", "single"},
			{"Q2", "1", "What does a glossary hold?", "single"},
			{"Q3", "2", "Pick the modeling levels", "multiple"},
		}},
		Sheet{Name: "ans", Rows: [][]any{
			{"qid", "options", "value", "point", "randomize", "ref"},
			{"Q1", "Data owner", "A", "1", "", "p.12"},
			{"Q1", "Nobody", "B", "0", "", ""},
			{"Q2", "Business terms", "A", "1", "", ""},
			{"Q2", "Passwords", "B", "0", "", ""},
			{"Q3", "Conceptual", "A", "1", "", ""},
			{"Q3", "Logical", "B", "1", "", ""},
			{"Q3", "Musical", "C", "0", "", ""},
		}},
	)
}
