package question

import "strings"

// Type distinguishes single-answer from multi-answer questions.
type Type string

const (
	// TypeSingle questions accept exactly one selected option.
	TypeSingle Type = "single"
	// TypeMultiple questions accept one or more selected options.
	TypeMultiple Type = "multiple"
)

// ParseType maps free-form type text to a Type. Blank and "single" are
// TypeSingle; any other label marks a multi-answer question.
func ParseType(text string) Type {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", string(TypeSingle):
		return TypeSingle
	default:
		return TypeMultiple
	}
}

// Question is one row of the question table.
type Question struct {
	ID      string
	Chapter string
	Text    string
	Type    Type
}

// Option is one answer choice belonging to a question.
type Option struct {
	QuestionID string
	Text       string
	Value      string
	Correct    bool
	Reference  string
	// Shuffle reports whether the option may move when option order is randomized.
	Shuffle bool
}
