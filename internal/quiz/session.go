package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"quizrunner/internal/question"
)

// DefaultSecondsPerQuestion sizes the time budget when settings leave it unset.
const DefaultSecondsPerQuestion = 30

var (
	// ErrNotRunning indicates an answer operation outside a running session.
	ErrNotRunning = errors.New("quiz is not running")
	// ErrNothingToReview indicates review was requested before any answer.
	ErrNothingToReview = errors.New("no recorded answers to review")
)

// Mode is the session state machine position.
type Mode int

const (
	// ModeStart waits for chapter selection.
	ModeStart Mode = iota
	// ModeRunning presents questions and accepts answers.
	ModeRunning
	// ModeReview replays the session with correctness marks.
	ModeReview
	// ModeFinished holds final results until reset.
	ModeFinished
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeRunning:
		return "running"
	case ModeReview:
		return "review"
	case ModeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Shuffler permutes n elements through swap.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Settings configures one session.
type Settings struct {
	Chapter            string
	ShuffleQuestions   bool
	ShuffleOptions     bool
	SecondsPerQuestion int
}

// Record is the scored answer to one question.
type Record struct {
	QuestionID string
	Type       question.Type
	Selection  Selection
	Points     float64
	Elapsed    time.Duration
}

// Summary is the end-of-session result.
type Summary struct {
	Chapter   string
	Score     float64
	Total     int
	Attempted int
	Correct   int
	Elapsed   time.Duration
	Expired   bool
}

// Session drives one quiz attempt. It is not safe for concurrent use; the UI
// event loop owns it.
type Session struct {
	bank     *question.Bank
	clock    Clock
	shuffler Shuffler
	observer Observer

	id         string
	mode       Mode
	returnMode Mode
	settings   Settings
	questions  []question.Question
	options    map[string][]question.Option
	records    []Record
	cursor     int
	shownAt    time.Time
	startedAt  time.Time
	endedAt    time.Time
	budget     time.Duration
	deadline   time.Time
	expired    bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock overrides the time source.
func WithClock(clock Clock) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// WithShuffler overrides the randomness used for question and option order.
func WithShuffler(shuffler Shuffler) SessionOption {
	return func(s *Session) { s.shuffler = shuffler }
}

// WithObserver registers a session event observer.
func WithObserver(observer Observer) SessionOption {
	return func(s *Session) { s.observer = observer }
}

// NewSession constructs an idle session over a bank.
func NewSession(bank *question.Bank, opts ...SessionOption) *Session {
	s := &Session{
		bank:     bank,
		clock:    systemClock{},
		shuffler: globalShuffler{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start filters, optionally shuffles, and begins a session. The previous
// session's state is discarded.
func (s *Session) Start(settings Settings) error {
	if settings.Chapter == "" {
		settings.Chapter = question.AllChapters
	}
	if settings.SecondsPerQuestion <= 0 {
		settings.SecondsPerQuestion = DefaultSecondsPerQuestion
	}
	questions := s.bank.Filter(settings.Chapter)
	if len(questions) == 0 {
		return question.ErrNoQuestions
	}
	if settings.ShuffleQuestions {
		s.shuffler.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	options := make(map[string][]question.Option, len(questions))
	for _, q := range questions {
		opts := s.bank.OptionsFor(q.ID)
		if settings.ShuffleOptions {
			shuffleMovable(s.shuffler, opts)
		}
		options[q.ID] = opts
	}

	now := s.clock.Now()
	s.reset()
	s.id = uuid.NewString()
	s.settings = settings
	s.questions = questions
	s.options = options
	s.mode = ModeRunning
	s.startedAt = now
	s.shownAt = now
	s.budget = time.Duration(settings.SecondsPerQuestion*len(questions)) * time.Second
	s.deadline = now.Add(s.budget)
	s.emit(Event{Type: EventStarted, Total: len(questions), EmittedAt: now})
	return nil
}

// shuffleMovable permutes the options whose Shuffle flag is set; fixed
// options keep their position.
func shuffleMovable(shuffler Shuffler, opts []question.Option) {
	var slots []int
	for i, opt := range opts {
		if opt.Shuffle {
			slots = append(slots, i)
		}
	}
	shuffler.Shuffle(len(slots), func(i, j int) {
		opts[slots[i]], opts[slots[j]] = opts[slots[j]], opts[slots[i]]
	})
}

// ID returns the identifier of the current session, empty before Start.
func (s *Session) ID() string { return s.id }

// Mode returns the state machine position.
func (s *Session) Mode() Mode { return s.mode }

// Expired reports whether the time budget ran out.
func (s *Session) Expired() bool { return s.expired }

// Settings returns the settings of the current session.
func (s *Session) Settings() Settings { return s.settings }

// Budget returns the total time allowed for the session.
func (s *Session) Budget() time.Duration { return s.budget }

// Questions returns the session questions in presentation order.
func (s *Session) Questions() []question.Question {
	out := make([]question.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Records returns a copy of the answer records.
func (s *Session) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Position returns the zero-based cursor and the number of questions.
func (s *Session) Position() (int, int) {
	return s.cursor, len(s.questions)
}

// Current returns the question being asked and its options in display order.
func (s *Session) Current() (question.Question, []question.Option, bool) {
	if s.mode != ModeRunning || s.cursor >= len(s.questions) {
		return question.Question{}, nil, false
	}
	q := s.questions[s.cursor]
	return q, s.options[q.ID], true
}

// Submit scores the selection for the current question, records it, and
// advances. Past the deadline it expires the session and returns
// ErrNotRunning without recording.
func (s *Session) Submit(selection Selection) (Record, error) {
	now := s.clock.Now()
	if s.Tick(now) {
		return Record{}, ErrNotRunning
	}
	q, _, ok := s.Current()
	if !ok || s.expired {
		return Record{}, ErrNotRunning
	}
	selection = NewSelection(selection...)
	record := Record{
		QuestionID: q.ID,
		Type:       q.Type,
		Selection:  selection,
		Points:     Score(q.Type, s.bank.CorrectValues(q.ID), selection),
		Elapsed:    now.Sub(s.shownAt),
	}
	s.records = append(s.records, record)
	s.emit(Event{
		Type:          EventAnswered,
		QuestionIndex: s.cursor,
		QuestionID:    q.ID,
		Selection:     selection,
		Points:        record.Points,
		Elapsed:       record.Elapsed,
		EmittedAt:     now,
	})
	s.advance(now)
	return record, nil
}

// Skip advances past the current question without recording an answer.
func (s *Session) Skip() error {
	now := s.clock.Now()
	if s.Tick(now) {
		return ErrNotRunning
	}
	q, _, ok := s.Current()
	if !ok || s.expired {
		return ErrNotRunning
	}
	s.emit(Event{Type: EventSkipped, QuestionIndex: s.cursor, QuestionID: q.ID, EmittedAt: now})
	s.advance(now)
	return nil
}

// Previous reopens the prior question, discarding its most recent record.
// It reports false when already on the first question.
func (s *Session) Previous() bool {
	if s.mode != ModeRunning || s.expired || s.cursor == 0 {
		return false
	}
	s.cursor--
	target := s.questions[s.cursor].ID
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].QuestionID == target {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	now := s.clock.Now()
	s.shownAt = now
	s.emit(Event{Type: EventPrevious, QuestionIndex: s.cursor, QuestionID: target, EmittedAt: now})
	return true
}

func (s *Session) advance(now time.Time) {
	s.cursor++
	s.shownAt = now
	if s.cursor >= len(s.questions) {
		s.finish(now)
	}
}

func (s *Session) finish(now time.Time) {
	if s.endedAt.IsZero() {
		s.endedAt = now
	}
	s.mode = ModeFinished
	summary := s.Result()
	s.emit(Event{Type: EventFinished, Summary: &summary, EmittedAt: now})
}

// End stops the session early.
func (s *Session) End() {
	if s.mode == ModeStart || s.mode == ModeFinished {
		return
	}
	s.finish(s.clock.Now())
}

// Remaining returns the time left in the budget at now.
func (s *Session) Remaining(now time.Time) time.Duration {
	if s.startedAt.IsZero() || s.expired {
		return 0
	}
	if !s.endedAt.IsZero() {
		now = s.endedAt
	}
	remaining := s.deadline.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Tick checks the deadline and reports whether the budget expired on this
// call. Expiry finishes a running session; a review in progress continues
// and returns to the finished state when it ends.
func (s *Session) Tick(now time.Time) bool {
	if s.startedAt.IsZero() || s.expired || !s.endedAt.IsZero() {
		return false
	}
	active := s.mode == ModeRunning || (s.mode == ModeReview && s.returnMode == ModeRunning)
	if !active || now.Before(s.deadline) {
		return false
	}
	s.expired = true
	s.emit(Event{Type: EventExpired, QuestionIndex: s.cursor, EmittedAt: now})
	if s.mode == ModeReview {
		s.returnMode = ModeFinished
		s.endedAt = now
		return true
	}
	s.finish(now)
	return true
}

// BeginReview switches to review mode from a running or finished session.
func (s *Session) BeginReview() error {
	if s.mode != ModeRunning && s.mode != ModeFinished {
		return ErrNotRunning
	}
	if len(s.records) == 0 {
		return ErrNothingToReview
	}
	s.returnMode = s.mode
	s.mode = ModeReview
	s.emit(Event{Type: EventReviewStarted, EmittedAt: s.clock.Now()})
	return nil
}

// EndReview returns to the mode review was entered from.
func (s *Session) EndReview() {
	if s.mode != ModeReview {
		return
	}
	s.mode = s.returnMode
	s.emit(Event{Type: EventReviewEnded, EmittedAt: s.clock.Now()})
}

// Result summarizes the session so far.
func (s *Session) Result() Summary {
	summary := Summary{
		Chapter:   s.settings.Chapter,
		Total:     len(s.questions),
		Attempted: len(s.records),
		Expired:   s.expired,
	}
	for _, record := range s.records {
		summary.Score += record.Points
		if record.Points >= 1 {
			summary.Correct++
		}
	}
	if !s.startedAt.IsZero() {
		end := s.endedAt
		if end.IsZero() {
			end = s.clock.Now()
		}
		summary.Elapsed = end.Sub(s.startedAt)
	}
	return summary
}

// Reset returns the session to the start screen.
func (s *Session) Reset() {
	wasActive := s.mode != ModeStart
	id := s.id
	s.reset()
	if wasActive {
		s.emit(Event{SessionID: id, Type: EventReset, EmittedAt: s.clock.Now()})
	}
}

func (s *Session) reset() {
	s.id = ""
	s.mode = ModeStart
	s.returnMode = ModeStart
	s.settings = Settings{}
	s.questions = nil
	s.options = nil
	s.records = nil
	s.cursor = 0
	s.shownAt = time.Time{}
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
	s.budget = 0
	s.deadline = time.Time{}
	s.expired = false
}

func (s *Session) emit(event Event) {
	if s.observer == nil {
		return
	}
	if event.SessionID == "" {
		event.SessionID = s.id
	}
	if event.Chapter == "" {
		event.Chapter = s.settings.Chapter
	}
	s.observer.OnSessionEvent(event)
}
