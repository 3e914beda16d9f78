// Package assess scores quiz questions of four kinds and runs the two lighter
// drill modes (flashcards, speed round).
package assess

import (
	"math/rand/v2"

	"github.com/abhisek/norlearn/internal/journal"
	"github.com/abhisek/norlearn/internal/progress"
	"github.com/abhisek/norlearn/internal/ui"
)

// Saver persists progress state after a mutation.
type Saver interface {
	Save(*progress.State) error
}

// Engine runs assessments against a renderer. All shuffling goes through Rng
// so tests can seed it.
type Engine struct {
	r         ui.Renderer
	rng       *rand.Rand
	store     Saver
	rec       journal.Recorder
	sessionID string
}

// New creates an assessment engine. rec may be a no-op recorder.
func New(r ui.Renderer, rng *rand.Rand, store Saver, rec journal.Recorder, sessionID string) *Engine {
	return &Engine{r: r, rng: rng, store: store, rec: rec, sessionID: sessionID}
}

// result is the outcome of a single graded question.
type result struct {
	correct bool
	kind    string
	detail  string // learner's answer, or "k/n" for matching
}
