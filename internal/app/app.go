// Package app wires the catalog, progress store, assessment engine and
// renderer into the interactive learning session.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/norlearn/internal/assess"
	"github.com/abhisek/norlearn/internal/catalog"
	"github.com/abhisek/norlearn/internal/journal"
	"github.com/abhisek/norlearn/internal/progress"
	"github.com/abhisek/norlearn/internal/sequencer"
	"github.com/abhisek/norlearn/internal/session"
	"github.com/abhisek/norlearn/internal/streak"
	"github.com/abhisek/norlearn/internal/ui"
)

// DefaultPageSize is the pagination window for lesson text.
const DefaultPageSize = 25

// Options carries the app's dependencies.
type Options struct {
	Catalog  *catalog.Catalog
	Store    *progress.Store
	Renderer ui.Renderer
	Recorder journal.Recorder
	PageSize int
	Rng      *rand.Rand       // nil = auto-seeded
	Now      func() time.Time // nil = time.Now
}

type app struct {
	cat       *catalog.Catalog
	store     *progress.Store
	r         ui.Renderer
	rec       journal.Recorder
	engine    *assess.Engine
	state     *progress.State
	pageSize  int
	now       func() time.Time
	sessionID string
}

// Run loads progress, touches the streak, runs the menu loop, and records the
// session on the way out. A prompt error at any level quits that level; at
// the top level it quits the app, still recording the session.
func Run(opts Options) error {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Recorder == nil {
		opts.Recorder = journal.Nop{}
	}

	state, err := opts.Store.Load()
	if err != nil {
		return err
	}

	a := &app{
		cat:       opts.Catalog,
		store:     opts.Store,
		r:         opts.Renderer,
		rec:       opts.Recorder,
		state:     state,
		pageSize:  opts.PageSize,
		now:       opts.Now,
		sessionID: uuid.New().String(),
	}
	a.engine = assess.New(opts.Renderer, opts.Rng, opts.Store, opts.Recorder, a.sessionID)

	if streak.Touch(a.state, a.now()) {
		if err := a.store.Save(a.state); err != nil {
			return fmt.Errorf("save streak: %w", err)
		}
	}

	start := a.now()
	a.dashboard()
	a.loop()
	return a.shutdown(start)
}

func (a *app) loop() {
	for {
		choice, err := a.menu()
		if err != nil {
			return
		}

		switch choice {
		case "1":
			if err := a.nextLesson(); err != nil {
				return
			}
		case "2":
			if err := a.pickQuiz(); err != nil {
				return
			}
		case "3":
			if err := a.engine.RunFlashcards(a.cat.Flashcards); err != nil {
				return
			}
		case "4":
			if err := a.engine.RunSpeedRound(a.cat.SpeedPairs); err != nil {
				return
			}
		case "5":
			if err := a.browse(); err != nil {
				return
			}
		case "6":
			a.dashboard()
		case "q", "Q", "quit", "exit":
			return
		default:
			a.r.Error("Invalid choice.")
		}
	}
}

func (a *app) menu() (string, error) {
	a.r.Print("\nWhat would you like to do?\n")
	a.r.Print("  1) 📖  Continue learning (next lesson)")
	a.r.Print("  2) 📝  Take a quiz")
	a.r.Print("  3) 🃏  Flashcard drill")
	a.r.Print("  4) ⚡  Speed round")
	a.r.Print("  5) 📚  Browse all modules")
	a.r.Print("  6) 📊  View progress")
	a.r.Print("  q) 👋  Quit")
	return a.r.Prompt("Choice: ")
}

// nextLesson presents the first uncompleted lesson, marks it complete, and
// offers the module's quiz.
func (a *app) nextLesson() error {
	m, l, ok := sequencer.Next(a.cat, a.state.CompletedSet())
	if !ok {
		a.r.Success("You've completed all lessons! Try quizzes to reinforce.")
		return nil
	}

	a.r.Header(m.Title + " → " + l.Title)
	a.r.Paragraphs(l.Content, a.pageSize)

	if err := a.completeLesson(m.ID, l.ID); err != nil {
		return err
	}
	a.r.Success("Lesson complete: " + l.Title)

	if len(m.Questions) > 0 {
		ans, err := a.r.Prompt("Take the quiz for this module? (y/n): ")
		if err != nil {
			return err
		}
		if ans == "y" || ans == "yes" {
			return a.runQuiz(m)
		}
	}
	return nil
}

// pickQuiz lists modules with quiz banks and runs the selected one.
func (a *app) pickQuiz() error {
	quizMods := a.cat.QuizModules()
	if len(quizMods) == 0 {
		a.r.Info("No assessment available.")
		return nil
	}

	a.r.Sub("Available Quizzes")
	for i, m := range quizMods {
		a.r.Print(fmt.Sprintf("  %d) %s (best: %d%%)", i+1, m.Title, a.state.Mastery[m.ID]))
	}

	sel, err := a.r.Prompt("Which quiz? (number): ")
	if err != nil {
		return err
	}
	idx, ok := assess.ParseIndex(sel, len(quizMods))
	if !ok {
		a.r.Error("Invalid selection.")
		return nil
	}
	return a.runQuiz(quizMods[idx-1])
}

func (a *app) runQuiz(m catalog.Module) error {
	_, err := a.engine.RunQuiz(m.ID, m.Title, m.Questions, a.state, a.now())
	if err == assess.ErrNoQuestions {
		a.r.Info("No assessment available for this module.")
		return nil
	}
	return err
}

// browse lists all modules and reads one end to end, marking each lesson
// complete as a side effect.
func (a *app) browse() error {
	a.r.Sub("All Modules")
	for i, m := range a.cat.Modules {
		done := 0
		for _, l := range m.Lessons {
			if a.state.IsCompleted(catalog.LessonKey(m.ID, l.ID)) {
				done++
			}
		}
		a.r.Print(fmt.Sprintf("  %d) %s (%d/%d lessons)", i+1, m.Title, done, len(m.Lessons)))
	}

	sel, err := a.r.Prompt("Read which module? (number, or Enter to go back): ")
	if err != nil {
		return err
	}
	if sel == "" {
		return nil
	}
	idx, ok := assess.ParseIndex(sel, len(a.cat.Modules))
	if !ok {
		a.r.Error("Invalid selection.")
		return nil
	}

	m := a.cat.Modules[idx-1]
	for _, l := range m.Lessons {
		a.r.Header(m.Title + " → " + l.Title)
		a.r.Paragraphs(l.Content, a.pageSize)
		if err := a.completeLesson(m.ID, l.ID); err != nil {
			return err
		}
	}
	return nil
}

// completeLesson marks a lesson complete and persists if anything changed.
func (a *app) completeLesson(moduleID, lessonID string) error {
	key := catalog.LessonKey(moduleID, lessonID)
	if a.state.IsCompleted(key) {
		return nil
	}
	sequencer.MarkComplete(a.state, moduleID, lessonID)
	if err := a.store.Save(a.state); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// shutdown records the session, persists, journals, and prints the summary.
func (a *app) shutdown(start time.Time) error {
	now := a.now()
	sess := session.End(a.state, start, now)
	if err := a.store.Save(a.state); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if err := a.rec.AppendSession(context.Background(), journal.SessionEvent{
		SessionID:       a.sessionID,
		StartedAt:       start,
		DurationMinutes: sess.DurationMinutes,
	}); err != nil {
		slog.Warn("journal session event", "error", err)
	}

	a.r.Print(fmt.Sprintf("\nSession: %.1f min | Total: %.0f min",
		sess.DurationMinutes, a.state.TotalTimeMinutes))
	a.r.Print("See you tomorrow! 🚀")
	return nil
}
