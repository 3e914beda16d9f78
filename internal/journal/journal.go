// Package journal is an append-only SQLite record of learning activity:
// per-answer, per-quiz and per-session events. It is derived telemetry for
// the stats command; the progress file remains the source of truth, so
// journal failures are never fatal to a session.
package journal

import (
	"context"
	"time"
)

// Question kind labels as stored in the journal.
const (
	KindMultipleChoice = "multiple_choice"
	KindFillBlank      = "fill_blank"
	KindMatching       = "matching"
	KindScenario       = "scenario"
)

// AnswerEvent records one graded question.
type AnswerEvent struct {
	SessionID string
	ModuleID  string
	Kind      string
	Correct   bool
	Detail    string
	At        time.Time
}

// QuizEvent records one completed quiz attempt.
type QuizEvent struct {
	SessionID    string
	ModuleID     string
	ScorePercent int
	Correct      int
	Total        int
	At           time.Time
}

// SessionEvent records one finished learning session.
type SessionEvent struct {
	SessionID       string
	StartedAt       time.Time
	DurationMinutes float64
}

// Recorder provides append access to the journal.
type Recorder interface {
	AppendAnswer(ctx context.Context, ev AnswerEvent) error
	AppendQuiz(ctx context.Context, ev QuizEvent) error
	AppendSession(ctx context.Context, ev SessionEvent) error
}

// Nop is a Recorder that discards everything. Used when the journal is
// disabled or failed to open.
type Nop struct{}

func (Nop) AppendAnswer(context.Context, AnswerEvent) error   { return nil }
func (Nop) AppendQuiz(context.Context, QuizEvent) error       { return nil }
func (Nop) AppendSession(context.Context, SessionEvent) error { return nil }
