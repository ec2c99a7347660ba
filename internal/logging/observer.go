package logging

import (
	"go.uber.org/zap"

	"quizrunner/internal/quiz"
)

// SessionLogger writes quiz session events to a zap logger.
type SessionLogger struct {
	logger *zap.Logger
}

// NewSessionLogger wraps logger as a quiz.Observer.
func NewSessionLogger(logger *zap.Logger) *SessionLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionLogger{logger: logger.Named("session")}
}

// OnSessionEvent logs one event with its identifying fields.
func (l *SessionLogger) OnSessionEvent(event quiz.Event) {
	fields := []zap.Field{
		zap.String("session_id", event.SessionID),
		zap.String("event", string(event.Type)),
		zap.String("chapter", event.Chapter),
	}
	switch event.Type {
	case quiz.EventStarted:
		fields = append(fields, zap.Int("total", event.Total))
	case quiz.EventAnswered:
		fields = append(fields,
			zap.Int("index", event.QuestionIndex),
			zap.String("question_id", event.QuestionID),
			zap.Strings("selection", event.Selection),
			zap.Float64("points", event.Points),
			zap.Duration("elapsed", event.Elapsed),
		)
	case quiz.EventSkipped, quiz.EventPrevious:
		fields = append(fields,
			zap.Int("index", event.QuestionIndex),
			zap.String("question_id", event.QuestionID),
		)
	case quiz.EventExpired:
		l.logger.Warn("time budget expired", append(fields, zap.Int("index", event.QuestionIndex))...)
		return
	case quiz.EventFinished:
		if event.Summary != nil {
			fields = append(fields,
				zap.Float64("score", event.Summary.Score),
				zap.Int("total", event.Summary.Total),
				zap.Int("attempted", event.Summary.Attempted),
				zap.Int("correct", event.Summary.Correct),
				zap.Duration("elapsed", event.Summary.Elapsed),
				zap.Bool("expired", event.Summary.Expired),
			)
		}
		l.logger.Info("session finished", fields...)
		return
	}
	l.logger.Debug("session event", fields...)
}
