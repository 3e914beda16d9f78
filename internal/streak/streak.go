// Package streak computes consecutive-day activity from recorded calendar
// dates.
package streak

import (
	"time"

	"github.com/abhisek/norlearn/internal/progress"
)

// Touch appends today's date to the streak record unless it is already the
// most recent entry. Returns true if the state was mutated (and needs a save).
// Called once per process start, before any other interaction.
func Touch(s *progress.State, today time.Time) bool {
	day := today.Format(progress.DayFormat)
	if n := len(s.StreakDays); n > 0 && s.StreakDays[n-1] == day {
		return false
	}
	s.StreakDays = append(s.StreakDays, day)
	return true
}

// Current walks the streak record backward from the most recent entry,
// counting consecutive calendar days. Only the most recent entry may trail
// the cursor by one day (a streak anchored at yesterday is still alive before
// today's session runs); every earlier entry must match the cursor exactly,
// so any skipped day breaks the chain for all earlier entries.
func Current(s *progress.State, today time.Time) int {
	count := 0
	cursor := today
	last := len(s.StreakDays) - 1
	for i := last; i >= 0; i-- {
		d, err := time.Parse(progress.DayFormat, s.StreakDays[i])
		if err != nil {
			break
		}
		day := d.Format(progress.DayFormat)
		if day != cursor.Format(progress.DayFormat) {
			if i != last || day != cursor.AddDate(0, 0, -1).Format(progress.DayFormat) {
				break
			}
		}
		count++
		cursor = d.AddDate(0, 0, -1)
	}
	return count
}
