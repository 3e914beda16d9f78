// Package session tracks elapsed time per run and the cumulative total.
package session

import (
	"math"
	"time"

	"github.com/abhisek/norlearn/internal/progress"
)

// End records the finished session: elapsed minutes (to one decimal place)
// appended to the session history and added to the running total. Called
// exactly once, at orderly shutdown; the caller persists afterwards.
// Returns the recorded session for the shutdown summary.
func End(s *progress.State, start time.Time, now time.Time) progress.Session {
	minutes := roundTenth(now.Sub(start).Minutes())
	sess := progress.Session{
		Date:            now.Format(progress.DayFormat),
		DurationMinutes: minutes,
	}
	s.Sessions = append(s.Sessions, sess)
	s.TotalTimeMinutes = roundTenth(s.TotalTimeMinutes + minutes)
	return sess
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
