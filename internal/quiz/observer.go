package quiz

import "time"

// EventType identifies a session lifecycle update for observers.
type EventType string

const (
	// EventStarted marks a new session with its filtered question set.
	EventStarted EventType = "started"
	// EventAnswered marks a submitted and scored question.
	EventAnswered EventType = "answered"
	// EventSkipped marks a question passed over without a record.
	EventSkipped EventType = "skipped"
	// EventPrevious marks a return to the prior question.
	EventPrevious EventType = "previous"
	// EventExpired marks the end of the time budget.
	EventExpired EventType = "expired"
	// EventReviewStarted marks entry into review mode.
	EventReviewStarted EventType = "review_started"
	// EventReviewEnded marks the return from review mode.
	EventReviewEnded EventType = "review_ended"
	// EventFinished marks completion or an early end.
	EventFinished EventType = "finished"
	// EventReset marks a return to the start screen.
	EventReset EventType = "reset"
)

// Event carries a single session update.
type Event struct {
	SessionID     string
	Type          EventType
	Chapter       string
	QuestionIndex int
	QuestionID    string
	Selection     Selection
	Points        float64
	Elapsed       time.Duration
	Total         int
	Summary       *Summary
	EmittedAt     time.Time
}

// Observer receives session events for logging or UI.
type Observer interface {
	OnSessionEvent(event Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnSessionEvent calls f.
func (f ObserverFunc) OnSessionEvent(event Event) {
	f(event)
}
