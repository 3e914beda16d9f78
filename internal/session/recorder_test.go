package session

import (
	"testing"
	"time"

	"github.com/abhisek/norlearn/internal/progress"
)

func TestEnd(t *testing.T) {
	s := progress.NewState()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := start.Add(12*time.Minute + 30*time.Second)

	sess := End(s, start, now)

	if sess.Date != "2025-03-10" {
		t.Errorf("Date = %q, want 2025-03-10", sess.Date)
	}
	if sess.DurationMinutes != 12.5 {
		t.Errorf("DurationMinutes = %v, want 12.5", sess.DurationMinutes)
	}
	if len(s.Sessions) != 1 {
		t.Fatalf("len(Sessions) = %d, want 1", len(s.Sessions))
	}
	if s.TotalTimeMinutes != 12.5 {
		t.Errorf("TotalTimeMinutes = %v, want 12.5", s.TotalTimeMinutes)
	}
}

func TestEndAccumulates(t *testing.T) {
	s := progress.NewState()
	s.TotalTimeMinutes = 30.2
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	End(s, start, start.Add(5*time.Minute+6*time.Second))

	if s.TotalTimeMinutes != 35.3 {
		t.Errorf("TotalTimeMinutes = %v, want 35.3", s.TotalTimeMinutes)
	}
}

func TestEndRoundsToTenth(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{90 * time.Second, 1.5},
		{93 * time.Second, 1.6}, // 1.55 rounds up
		{1 * time.Second, 0.0},
		{3 * time.Second, 0.1},
	}

	for _, tt := range tests {
		s := progress.NewState()
		start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		sess := End(s, start, start.Add(tt.elapsed))
		if sess.DurationMinutes != tt.want {
			t.Errorf("End(%v) minutes = %v, want %v", tt.elapsed, sess.DurationMinutes, tt.want)
		}
	}
}
