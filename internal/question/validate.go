package question

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoQuestions indicates that a workbook or chapter yielded no questions.
var ErrNoQuestions = errors.New("no questions found")

// Issue captures a data problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more bank issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank check failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Check reports anomalies in a bank: duplicate ids, orphan options, and
// questions that cannot be answered correctly. Anomalies never stop a run.
func Check(bank *Bank) error {
	collector := &issueCollector{}
	if len(bank.Questions) == 0 {
		collector.add("questions", ErrNoQuestions.Error())
	}

	known := map[string]struct{}{}
	for i, q := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if q.ID == "" {
			collector.add(prefix+".qid", "is blank")
			continue
		}
		if _, exists := known[q.ID]; exists {
			collector.add(prefix+".qid", fmt.Sprintf("duplicate id %q", q.ID))
			continue
		}
		known[q.ID] = struct{}{}
		if strings.TrimSpace(q.Text) == "" {
			collector.add(prefix+".question", fmt.Sprintf("question %q has no text", q.ID))
		}
		options := bank.OptionsFor(q.ID)
		if len(options) == 0 {
			collector.add(prefix+".options", fmt.Sprintf("question %q has no options", q.ID))
			continue
		}
		if len(bank.CorrectValues(q.ID)) == 0 {
			collector.add(prefix+".options", fmt.Sprintf("question %q has no correct option", q.ID))
		}
	}

	for i, option := range bank.Options {
		if _, ok := known[option.QuestionID]; !ok {
			collector.add(fmt.Sprintf("options[%d].qid", i), fmt.Sprintf("unknown question %q", option.QuestionID))
		}
	}
	return collector.result()
}
