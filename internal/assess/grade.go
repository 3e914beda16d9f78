package assess

import (
	"math"
	"strconv"
	"strings"
)

// Normalize prepares a free-text answer for comparison: surrounding
// whitespace trimmed, case folded.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FillBlankCorrect reports whether input matches the expected answer after
// normalizing both sides.
func FillBlankCorrect(input, answer string) bool {
	return Normalize(input) == Normalize(answer)
}

// ParseIndex parses a 1-based selection index against n items.
func ParseIndex(s string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i, true
}

// LenientMatch grades a speed-round answer: case-insensitive containment in
// either direction between the submitted text and the expected label, or the
// label's first word appearing in the answer. Empty input never matches.
func LenientMatch(input, label string) bool {
	in := Normalize(input)
	if in == "" {
		return false
	}
	lb := Normalize(label)
	if strings.Contains(in, lb) || strings.Contains(lb, in) {
		return true
	}
	if first, _, _ := strings.Cut(lb, " "); first != "" && strings.Contains(in, first) {
		return true
	}
	return false
}

// ScorePercent converts a correct/total tally to a rounded percentage.
// Zero when total is zero.
func ScorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
