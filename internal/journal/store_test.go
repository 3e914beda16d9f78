package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTestStore(t)

	totals, err := s.CountTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
}

func TestAppendAndAggregateAnswers(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	events := []AnswerEvent{
		{SessionID: "s1", ModuleID: "products", Kind: KindMultipleChoice, Correct: true, Detail: "Trialtrove", At: at},
		{SessionID: "s1", ModuleID: "products", Kind: KindFillBlank, Correct: false, Detail: "sitetrove", At: at},
		{SessionID: "s1", ModuleID: "pricing", Kind: KindScenario, Correct: true, Detail: "ok", At: at},
	}
	for _, ev := range events {
		require.NoError(t, s.AppendAnswer(ctx, ev))
	}

	accs, err := s.ModuleAccuracies(ctx)
	require.NoError(t, err)
	require.Len(t, accs, 2)

	// Sorted by module id.
	assert.Equal(t, "pricing", accs[0].ModuleID)
	assert.Equal(t, 1, accs[0].Answered)
	assert.Equal(t, 1, accs[0].Correct)
	assert.Equal(t, 1.0, accs[0].Accuracy())

	assert.Equal(t, "products", accs[1].ModuleID)
	assert.Equal(t, 2, accs[1].Answered)
	assert.Equal(t, 1, accs[1].Correct)
	assert.Equal(t, 0.5, accs[1].Accuracy())
}

func TestAppendQuizAndSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.AppendQuiz(ctx, QuizEvent{
		SessionID: "s1", ModuleID: "products", ScorePercent: 80, Correct: 4, Total: 5, At: at,
	}))
	require.NoError(t, s.AppendSession(ctx, SessionEvent{
		SessionID: "s1", StartedAt: at, DurationMinutes: 12.5,
	}))
	require.NoError(t, s.AppendSession(ctx, SessionEvent{
		SessionID: "s2", StartedAt: at.Add(24 * time.Hour), DurationMinutes: 3.0,
	}))

	totals, err := s.CountTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{Answers: 0, Quizzes: 1, Sessions: 2}, totals)

	recent, err := s.RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Newest first.
	assert.Equal(t, 3.0, recent[0].DurationMinutes)
	assert.Equal(t, 12.5, recent[1].DurationMinutes)

	limited, err := s.RecentSessions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestAccuracyZeroAnswered(t *testing.T) {
	a := ModuleAccuracy{ModuleID: "m"}
	assert.Equal(t, 0.0, a.Accuracy())
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = Nop{}
	ctx := context.Background()
	assert.NoError(t, r.AppendAnswer(ctx, AnswerEvent{}))
	assert.NoError(t, r.AppendQuiz(ctx, QuizEvent{}))
	assert.NoError(t, r.AppendSession(ctx, SessionEvent{}))
}
