package workbook

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"quizrunner/internal/question"
)

// Layout identifies the spreadsheet shape a bank was read from.
type Layout string

const (
	// LayoutSplit has separate "ques" and "ans" sheets.
	LayoutSplit Layout = "split"
	// LayoutCombined has one sheet with per-option columns A-E.
	LayoutCombined Layout = "combined"
)

// Sheet names of the split layout, matched case-insensitively.
const (
	QuestionSheet = "ques"
	AnswerSheet   = "ans"
)

// ErrNotFound indicates that the workbook file does not exist.
var ErrNotFound = errors.New("workbook not found")

// Load reads a workbook and returns its normalized question bank.
func Load(path string, catalog question.Catalog) (*question.Bank, Layout, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, "", fmt.Errorf("stat workbook: %w", err)
	}
	if info.IsDir() {
		return nil, "", fmt.Errorf("read workbook: %s is a directory", path)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read workbook: %w", err)
	}
	defer file.Close()

	if catalog == nil {
		catalog = question.DefaultCatalog()
	}
	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", fmt.Errorf("read workbook: no sheets in %s", path)
	}

	bank, layout, err := parse(file, sheets, catalog)
	if err != nil {
		return nil, "", err
	}
	if len(bank.Questions) == 0 {
		return nil, "", fmt.Errorf("read workbook %s: %w", path, question.ErrNoQuestions)
	}
	return bank, layout, nil
}

func parse(file *excelize.File, sheets []string, catalog question.Catalog) (*question.Bank, Layout, error) {
	quesName, ansName, split := detectSplit(sheets)
	if split {
		ques, err := readSheet(file, quesName)
		if err != nil {
			return nil, "", err
		}
		ans, err := readSheet(file, ansName)
		if err != nil {
			return nil, "", err
		}
		return parseSplit(ques, ans, catalog), LayoutSplit, nil
	}

	combined, err := readSheet(file, sheets[0])
	if err != nil {
		return nil, "", err
	}
	return parseCombined(combined, catalog), LayoutCombined, nil
}

// detectSplit looks for the question and answer sheets of the split layout.
func detectSplit(sheets []string) (string, string, bool) {
	var quesName, ansName string
	for _, name := range sheets {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case QuestionSheet:
			if quesName == "" {
				quesName = name
			}
		case AnswerSheet:
			if ansName == "" {
				ansName = name
			}
		}
	}
	return quesName, ansName, quesName != "" && ansName != ""
}

func readSheet(file *excelize.File, name string) (sheet, error) {
	rows, err := file.GetRows(name)
	if err != nil {
		return sheet{}, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return newSheet(name, rows), nil
}
