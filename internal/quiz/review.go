package quiz

import "quizrunner/internal/question"

// Mark annotates one option for display after answering or during review.
type Mark struct {
	Option   question.Option
	Selected bool
}

// Correct reports whether the option is a correct answer.
func (m Mark) Correct() bool { return m.Option.Correct }

// WrongPick reports whether the user selected an incorrect option.
func (m Mark) WrongPick() bool { return m.Selected && !m.Option.Correct }

// ReviewItem is one question replayed in review mode.
type ReviewItem struct {
	Index    int
	Question question.Question
	Marks    []Mark
	Answered bool
	Record   Record
}

// Review replays every session question in presentation order. The user's
// selection is the most recent record for each question. Review never
// changes recorded answers.
func (s *Session) Review() []ReviewItem {
	items := make([]ReviewItem, 0, len(s.questions))
	for i, q := range s.questions {
		record, answered := s.latestRecord(q.ID)
		items = append(items, ReviewItem{
			Index:    i,
			Question: q,
			Marks:    markOptions(s.options[q.ID], record.Selection),
			Answered: answered,
			Record:   record,
		})
	}
	return items
}

// Reveal returns the correctness marks for the current question without
// recording anything.
func (s *Session) Reveal() []Mark {
	q, options, ok := s.Current()
	if !ok {
		return nil
	}
	record, _ := s.latestRecord(q.ID)
	return markOptions(options, record.Selection)
}

// MarkOptions annotates options with a selection.
func MarkOptions(options []question.Option, selection Selection) []Mark {
	return markOptions(options, selection)
}

func markOptions(options []question.Option, selection Selection) []Mark {
	marks := make([]Mark, 0, len(options))
	for _, option := range options {
		marks = append(marks, Mark{Option: option, Selected: selection.Contains(option.Value)})
	}
	return marks
}

func (s *Session) latestRecord(id string) (Record, bool) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].QuestionID == id {
			return s.records[i], true
		}
	}
	return Record{}, false
}
