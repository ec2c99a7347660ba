package workbook

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"quizrunner/internal/question"
	"quizrunner/internal/testutil"
)

// TestLoadSplitLayout verifies the two-sheet layout and column defaults.
func TestLoadSplitLayout(t *testing.T) {
	path := testutil.WriteWorkbook(t,
		testutil.Sheet{Name: "QUES", Rows: [][]any{
			{"qid", "Chapter", "question", "type"},
			{"1", "2", "Who owns data?", ""},
			{"2", "", "Pick two", "Multi-Select"},
		}},
		testutil.Sheet{Name: "Ans", Rows: [][]any{
			{"qid", "options", "value", "point", "randomize", "ref"},
			{"1", "Stewards", "A", "1", "", "p.10"},
			{"1", "Nobody", "B", "abc", "0", ""},
			{"2", "X", "A", "1", "", ""},
			{"2", "Y", "", "0", "", ""},
			{"2", "Z", "C", "1.0", "", ""},
		}},
	)
	bank, layout, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if layout != LayoutSplit {
		t.Fatalf("expected split layout, got %s", layout)
	}
	if len(bank.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(bank.Questions))
	}
	first := bank.Questions[0]
	if first.Chapter != "Data Governance" || first.Type != question.TypeSingle {
		t.Fatalf("unexpected first question: %+v", first)
	}
	second := bank.Questions[1]
	if second.Chapter != question.Unspecified || second.Type != question.TypeMultiple {
		t.Fatalf("unexpected second question: %+v", second)
	}
	options := bank.OptionsFor("1")
	if len(options) != 2 || !options[0].Correct || options[1].Correct {
		t.Fatalf("unexpected options: %+v", options)
	}
	if options[0].Reference != "p.10" || !options[0].Shuffle || options[1].Shuffle {
		t.Fatalf("unexpected option metadata: %+v", options)
	}
	if got := bank.CorrectValues("2"); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("expected correct [A C], got %v", got)
	}
	if got := bank.OptionsFor("2")[1].Value; got != "B" {
		t.Fatalf("expected blank value to default by position, got %q", got)
	}
}

// TestLoadSplitLayoutWithoutIDColumn verifies generated question ids.
func TestLoadSplitLayoutWithoutIDColumn(t *testing.T) {
	path := testutil.WriteWorkbook(t,
		testutil.Sheet{Name: "ques", Rows: [][]any{
			{"question"},
			{"First"},
			{"Second"},
		}},
		testutil.Sheet{Name: "ans", Rows: [][]any{
			{"qid", "options", "value", "point"},
			{"Q2", "yes", "A", "1"},
		}},
	)
	bank, _, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Questions[0].ID != "Q1" || bank.Questions[1].ID != "Q2" {
		t.Fatalf("unexpected ids: %+v", bank.Questions)
	}
	if bank.Questions[0].Chapter != question.Unspecified {
		t.Fatalf("expected default chapter, got %q", bank.Questions[0].Chapter)
	}
	if len(bank.OptionsFor("Q2")) != 1 {
		t.Fatalf("expected option for Q2")
	}
}

// TestLoadCombinedLayout verifies the single-sheet layout.
func TestLoadCombinedLayout(t *testing.T) {
	path := testutil.WriteWorkbook(t,
		testutil.Sheet{Name: "Exam", Rows: [][]any{
			{"Question Number", "Knowledge Area", "Question", "A", "B.", "c", "D", "E", "Correct", "DMBOK Section", "DMBOK Page"},
			{"101", "12", "What is metadata?", "Data about data", "Noise", "A table", "", "", "A", "Metadata", "417"},
			{"", "", "Select two", "one", "two", "three", "four", "", "b; d", "4", ""},
			{"103", "", "No answer", "x", "y", "", "", "", "?", "", ""},
		}},
	)
	bank, layout, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if layout != LayoutCombined {
		t.Fatalf("expected combined layout, got %s", layout)
	}
	if len(bank.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(bank.Questions))
	}

	q1 := bank.Questions[0]
	if q1.ID != "101" || q1.Chapter != "Metadata" || q1.Type != question.TypeSingle {
		t.Fatalf("unexpected q1: %+v", q1)
	}
	opts := bank.OptionsFor("101")
	if len(opts) != 3 {
		t.Fatalf("expected 3 non-blank options, got %d", len(opts))
	}
	if opts[0].Reference != "Metadata | 417" {
		t.Fatalf("unexpected reference %q", opts[0].Reference)
	}

	q2 := bank.Questions[1]
	if q2.ID != "Q2" || q2.Type != question.TypeMultiple {
		t.Fatalf("unexpected q2: %+v", q2)
	}
	if q2.Chapter != "Data Quality" {
		t.Fatalf("expected chapter from section fallback, got %q", q2.Chapter)
	}
	if got := bank.CorrectValues("Q2"); !reflect.DeepEqual(got, []string{"B", "D"}) {
		t.Fatalf("expected correct [B D], got %v", got)
	}

	q3 := bank.Questions[2]
	if q3.Chapter != question.Unspecified || q3.Type != question.TypeSingle {
		t.Fatalf("unexpected q3: %+v", q3)
	}
	if len(bank.CorrectValues("103")) != 0 {
		t.Fatalf("expected no correct options")
	}
}

// TestLoadMissingFile verifies the not-found sentinel is returned.
func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestLoadCorruptFile verifies unreadable workbooks fail to load.
func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := Load(path, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("did not expect not-found error")
	}
}

// TestLoadEmptyWorkbook verifies a workbook without questions is fatal.
func TestLoadEmptyWorkbook(t *testing.T) {
	path := testutil.WriteWorkbook(t, testutil.Sheet{Name: "Exam", Rows: [][]any{
		{"Question Number", "Question", "A", "B", "Correct"},
	}})
	_, _, err := Load(path, nil)
	if !errors.Is(err, question.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

// TestDetectSplit verifies sheet-name matching.
func TestDetectSplit(t *testing.T) {
	cases := []struct {
		sheets []string
		want   bool
	}{
		{sheets: []string{"Ques", "ANS"}, want: true},
		{sheets: []string{"Sheet1", "ques"}, want: false},
		{sheets: []string{"questions", "answers"}, want: false},
	}
	for _, tc := range cases {
		_, _, got := detectSplit(tc.sheets)
		if got != tc.want {
			t.Fatalf("detectSplit(%v): expected %v, got %v", tc.sheets, tc.want, got)
		}
	}
}
