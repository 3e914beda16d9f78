// Package mastery folds quiz results into the per-module best-score record.
package mastery

import "github.com/abhisek/norlearn/internal/progress"

// Band classifies a mastery score for feedback and dashboard display.
type Band int

const (
	BandNeedsWork Band = iota // below 60
	BandGood                  // 60-79
	BandMastered              // 80 and up
)

// MasteredThreshold is the score at which a module counts as mastered.
const MasteredThreshold = 80

// Record folds a new attempt score into the module's mastery value.
// Mastery is monotonic non-decreasing: a lower later score never lowers it.
func Record(s *progress.State, moduleID string, scorePercent int) {
	if scorePercent > s.Mastery[moduleID] {
		s.Mastery[moduleID] = scorePercent
	}
}

// Level returns the current mastery score for a module, zero if unattempted.
func Level(s *progress.State, moduleID string) int {
	return s.Mastery[moduleID]
}

// BandFor classifies a score percentage.
func BandFor(scorePercent int) Band {
	switch {
	case scorePercent >= MasteredThreshold:
		return BandMastered
	case scorePercent >= 60:
		return BandGood
	default:
		return BandNeedsWork
	}
}
