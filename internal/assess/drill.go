package assess

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/norlearn/internal/catalog"
)

const (
	// FlashcardsPerDrill caps one flashcard sitting.
	FlashcardsPerDrill = 10
	// SpeedRoundSize is the number of pairs per speed round.
	SpeedRoundSize = 7
)

// RunFlashcards drills up to FlashcardsPerDrill cards sampled without
// replacement, with a binary self-report per card. Ephemeral: nothing is
// persisted.
func (e *Engine) RunFlashcards(deck []catalog.Flashcard) error {
	e.r.Header("FLASHCARD DRILL")

	cards := sample(e.rng, deck, FlashcardsPerDrill)
	total := len(cards)
	correct := 0

	for i, c := range cards {
		e.r.Info(fmt.Sprintf("\nCard %d/%d", i+1, total))
		e.r.Print("\n" + c.Front)
		if _, err := e.r.Prompt("[Think, then press Enter to reveal]"); err != nil {
			return err
		}
		e.r.Print("\n" + c.Back)
		ans, err := e.r.Prompt("Did you know it? (y/n): ")
		if err != nil {
			return err
		}
		if isYes(ans) {
			correct++
			e.r.Success("Got it!")
		} else {
			e.r.Error("Review this one again.")
		}
	}

	pct := ScorePercent(correct, total)
	e.r.Print("\n" + rule40)
	e.r.Print(fmt.Sprintf("Flashcards: %d/%d (%d%%)", correct, total, pct))
	return nil
}

// RunSpeedRound asks SpeedRoundSize description→label pairs against the
// clock, graded leniently. Ephemeral: nothing is persisted.
func (e *Engine) RunSpeedRound(pairs []catalog.SpeedPair) error {
	e.r.Header("SPEED ROUND ⚡")
	e.r.Info("Answer as fast as you can! Match the brand to the description.\n")

	round := sample(e.rng, pairs, SpeedRoundSize)
	correct := 0
	start := time.Now()

	for _, p := range round {
		ans, err := e.r.Prompt(fmt.Sprintf("  %s  →  ", p.Description))
		if err != nil {
			return err
		}
		if LenientMatch(ans, p.Label) {
			correct++
			e.r.Success("")
		} else {
			e.r.Error("→ " + p.Label)
		}
	}

	elapsed := time.Since(start).Seconds()
	e.r.Print(fmt.Sprintf("\nResult: %d/%d in %.1fs", correct, len(round), elapsed))
	return nil
}

// sample returns up to n elements drawn without replacement, in random order.
func sample[T any](rng *rand.Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	perm := rng.Perm(len(items))
	out := make([]T, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, items[idx])
	}
	return out
}

func isYes(s string) bool {
	return strings.EqualFold(s, "y") || strings.EqualFold(s, "yes")
}
