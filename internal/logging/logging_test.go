package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"quizrunner/internal/config"
	"quizrunner/internal/question"
	"quizrunner/internal/quiz"
	"quizrunner/internal/testutil"
)

// TestNewWithoutFileIsNop verifies logging stays off without a path.
func TestNewWithoutFileIsNop(t *testing.T) {
	logger, closer, err := New(config.LogConfig{Level: "info"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected no-op logger")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

// TestNewWritesJSONLines verifies the rotating file receives JSON entries.
func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quizrunner.log")
	logger, closer, err := New(config.LogConfig{File: path, Level: "debug", MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("loaded", zap.Int("questions", 3))
	_ = logger.Sync()
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", data, err)
	}
	if entry["msg"] != "loaded" || entry["questions"] != float64(3) {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

// TestNewRejectsUnknownLevel verifies level parsing errors surface.
func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	if err == nil {
		t.Fatalf("expected level error")
	}
}

// TestSessionLoggerRecordsLifecycle verifies session events reach the log.
func TestSessionLoggerRecordsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	clock := testutil.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	bank := question.NewBank(
		[]question.Question{{ID: "Q1", Chapter: "Data Governance", Text: "?", Type: question.TypeSingle}},
		[]question.Option{
			{QuestionID: "Q1", Text: "yes", Value: "A", Correct: true},
			{QuestionID: "Q1", Text: "no", Value: "B"},
		},
	)
	session := quiz.NewSession(bank,
		quiz.WithClock(clock),
		quiz.WithObserver(NewSessionLogger(zap.New(core))),
	)
	if err := session.Start(quiz.Settings{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	clock.Advance(2 * time.Second)
	if _, err := session.Submit(quiz.NewSelection("A")); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got := logs.FilterField(zap.String("event", "answered")).Len(); got != 1 {
		t.Fatalf("expected 1 answered entry, got %d", got)
	}
	finished := logs.FilterMessage("session finished").All()
	if len(finished) != 1 {
		t.Fatalf("expected 1 finished entry, got %d", len(finished))
	}
	if score := finished[0].ContextMap()["score"]; score != float64(1) {
		t.Fatalf("expected score 1, got %v", score)
	}
	if id := finished[0].ContextMap()["session_id"]; id != session.ID() {
		t.Fatalf("expected session id %q, got %v", session.ID(), id)
	}
}
