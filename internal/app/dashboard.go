package app

import (
	"fmt"

	"github.com/abhisek/norlearn/internal/mastery"
	"github.com/abhisek/norlearn/internal/streak"
	"github.com/abhisek/norlearn/internal/ui"
)

// dashboard shows the streak, lesson progress, and per-module mastery bars.
func (a *app) dashboard() {
	a.r.Header("NORLEARN — DAILY LEARNING")

	a.r.Print(fmt.Sprintf("  🔥 Streak: %d day(s)    📚 Sessions: %d",
		streak.Current(a.state, a.now()), len(a.state.Sessions)))

	total := a.cat.TotalLessons()
	done := len(a.state.LessonsCompleted)
	a.r.Print(fmt.Sprintf("  📖 Lessons: %d/%d  %s", done, total, ui.Bar(done, total, 20)))

	a.r.Sub("Module Mastery")
	for _, m := range a.cat.Modules {
		score := mastery.Level(a.state, m.ID)
		glyph := "○"
		if mastery.BandFor(score) == mastery.BandMastered {
			glyph = "✓"
		}
		a.r.Print(fmt.Sprintf("  %s %-42s %s", glyph, m.Title, ui.Bar(score, 100, 15)))
	}
	a.r.Print("")
}
