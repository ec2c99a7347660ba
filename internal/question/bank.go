package question

// AllChapters selects every question regardless of chapter.
const AllChapters = "All Chapters"

// Bank holds the question and option tables loaded from a workbook.
type Bank struct {
	Questions []Question
	Options   []Option

	byQuestion map[string][]int
}

// NewBank indexes options by question id.
func NewBank(questions []Question, options []Option) *Bank {
	bank := &Bank{
		Questions:  questions,
		Options:    options,
		byQuestion: make(map[string][]int, len(questions)),
	}
	for i, option := range options {
		bank.byQuestion[option.QuestionID] = append(bank.byQuestion[option.QuestionID], i)
	}
	return bank
}

// OptionsFor returns the options of a question in source order.
func (b *Bank) OptionsFor(id string) []Option {
	indexes := b.byQuestion[id]
	options := make([]Option, 0, len(indexes))
	for _, index := range indexes {
		options = append(options, b.Options[index])
	}
	return options
}

// CorrectValues returns the values of the correct options of a question.
func (b *Bank) CorrectValues(id string) []string {
	var values []string
	for _, index := range b.byQuestion[id] {
		if b.Options[index].Correct {
			values = append(values, b.Options[index].Value)
		}
	}
	return values
}

// Chapters returns the distinct chapter labels in order of first appearance.
func (b *Bank) Chapters() []string {
	seen := map[string]struct{}{}
	var chapters []string
	for _, q := range b.Questions {
		if _, ok := seen[q.Chapter]; ok {
			continue
		}
		seen[q.Chapter] = struct{}{}
		chapters = append(chapters, q.Chapter)
	}
	return chapters
}

// Filter returns the questions of a chapter, or every question for AllChapters.
func (b *Bank) Filter(chapter string) []Question {
	if chapter == "" || chapter == AllChapters {
		out := make([]Question, len(b.Questions))
		copy(out, b.Questions)
		return out
	}
	var out []Question
	for _, q := range b.Questions {
		if q.Chapter == chapter {
			out = append(out, q)
		}
	}
	return out
}

// Count returns the number of questions in a chapter.
func (b *Bank) Count(chapter string) int {
	if chapter == "" || chapter == AllChapters {
		return len(b.Questions)
	}
	count := 0
	for _, q := range b.Questions {
		if q.Chapter == chapter {
			count++
		}
	}
	return count
}
