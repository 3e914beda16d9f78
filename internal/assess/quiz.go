package assess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/abhisek/norlearn/internal/catalog"
	"github.com/abhisek/norlearn/internal/journal"
	"github.com/abhisek/norlearn/internal/mastery"
	"github.com/abhisek/norlearn/internal/progress"
)

// ErrNoQuestions is returned when a quiz is requested for a module with an
// empty quiz bank. No attempt is recorded.
var ErrNoQuestions = errors.New("no questions in quiz bank")

// RunQuiz presents the module's questions in randomized order, tallies
// correctness per each kind's rule, records the attempt and folds mastery,
// then persists. A prompt error (quit) aborts the quiz without recording.
func (e *Engine) RunQuiz(moduleID, title string, questions []catalog.Question, st *progress.State, now time.Time) (progress.Attempt, error) {
	if len(questions) == 0 {
		return progress.Attempt{}, ErrNoQuestions
	}

	e.r.Header("QUIZ: " + title)

	shuffled := make([]catalog.Question, len(questions))
	copy(shuffled, questions)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	correctCount := 0
	total := len(shuffled)

	for i, q := range shuffled {
		e.r.Info(fmt.Sprintf("\nQuestion %d/%d", i+1, total))
		res, err := e.ask(q)
		if err != nil {
			return progress.Attempt{}, err
		}
		if res.correct {
			correctCount++
		}
		e.appendAnswer(moduleID, res, now)
	}

	pct := ScorePercent(correctCount, total)
	e.r.Print(fmt.Sprintf("\n%s", rule40))
	e.r.Print(fmt.Sprintf("Score: %d/%d (%d%%)", correctCount, total, pct))
	switch mastery.BandFor(pct) {
	case mastery.BandMastered:
		e.r.Success("Excellent — module mastered!")
	case mastery.BandGood:
		e.r.Print("Good progress — review weak areas.")
	default:
		e.r.Error("Needs work — re-read the lesson material.")
	}

	attempt := progress.Attempt{
		Date:         now.Format(progress.DayFormat),
		ScorePercent: pct,
		Correct:      correctCount,
		Total:        total,
	}
	st.RecordAttempt(moduleID, attempt)
	mastery.Record(st, moduleID, pct)
	if err := e.store.Save(st); err != nil {
		return attempt, fmt.Errorf("save progress: %w", err)
	}

	if err := e.rec.AppendQuiz(context.Background(), journal.QuizEvent{
		SessionID:    e.sessionID,
		ModuleID:     moduleID,
		ScorePercent: pct,
		Correct:      correctCount,
		Total:        total,
		At:           now,
	}); err != nil {
		slog.Warn("journal quiz event", "error", err)
	}

	return attempt, nil
}

const rule40 = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// ask grades one question. The dispatch is exhaustive over the question union.
func (e *Engine) ask(q catalog.Question) (result, error) {
	switch q := q.(type) {
	case catalog.MultipleChoice:
		return e.askMultipleChoice(q)
	case catalog.FillBlank:
		return e.askFillBlank(q)
	case catalog.Matching:
		return e.askMatching(q)
	case catalog.Scenario:
		return e.askScenario(q)
	default:
		return result{}, fmt.Errorf("unknown question kind %T", q)
	}
}

func (e *Engine) askMultipleChoice(q catalog.MultipleChoice) (result, error) {
	e.r.Print("\n" + q.Prompt + "\n")
	for i, opt := range q.Options {
		e.r.Print(fmt.Sprintf("  %d) %s", i+1, opt))
	}

	ans, err := e.r.Prompt("Your answer (number): ")
	if err != nil {
		return result{}, err
	}

	// An unparseable index falls back to the raw text; it grades as
	// incorrect unless it happens to equal the correct option.
	chosen := ans
	if idx, ok := ParseIndex(ans, len(q.Options)); ok {
		chosen = q.Options[idx-1]
	}

	correct := chosen == q.Correct
	if correct {
		e.r.Success("Correct!")
	} else {
		e.r.Error("Incorrect. Answer: " + q.Correct)
	}
	e.explain(q.Explanation)
	return result{correct: correct, kind: journal.KindMultipleChoice, detail: chosen}, nil
}

func (e *Engine) askFillBlank(q catalog.FillBlank) (result, error) {
	e.r.Print("\n" + q.Prompt)

	ans, err := e.r.Prompt("Your answer: ")
	if err != nil {
		return result{}, err
	}

	correct := FillBlankCorrect(ans, q.Answer)
	if correct {
		e.r.Success("Correct!")
	} else {
		e.r.Error("Incorrect. Answer: " + q.Answer)
	}
	e.explain(q.Explanation)
	return result{correct: correct, kind: journal.KindFillBlank, detail: ans}, nil
}

func (e *Engine) askMatching(q catalog.Matching) (result, error) {
	e.r.Print("\n" + q.Prompt + "\n")

	keys := make([]string, 0, len(q.Pairs))
	for k := range q.Pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, q.Pairs[k])
	}
	e.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	for i, v := range values {
		e.r.Print(fmt.Sprintf("  %d) %s", i+1, v))
	}

	score := 0
	total := len(keys)
	for _, k := range keys {
		ans, err := e.r.Prompt(fmt.Sprintf("  %s → (number): ", k))
		if err != nil {
			return result{}, err
		}
		chosen := ""
		if idx, ok := ParseIndex(ans, len(values)); ok {
			chosen = values[idx-1]
		}
		if chosen == q.Pairs[k] {
			e.r.Success(fmt.Sprintf("  %s → %s", k, chosen))
			score++
		} else {
			e.r.Error(fmt.Sprintf("  %s → should be: %s", k, q.Pairs[k]))
		}
	}

	detail := fmt.Sprintf("%d/%d", score, total)
	e.r.Print("\n  Matched " + detail)

	// Partial credit is shown but only a full match counts toward the quiz
	// percentage.
	return result{correct: score == total, kind: journal.KindMatching, detail: detail}, nil
}

func (e *Engine) askScenario(q catalog.Scenario) (result, error) {
	e.r.Print("\n" + q.Prompt)
	e.r.Info("(Type your answer, then press Enter. This is self-assessed.)")

	ans, err := e.r.Prompt("Your answer: ")
	if err != nil {
		return result{}, err
	}

	e.r.Sub("SUGGESTED ANSWER")
	e.r.Print(q.ModelAnswer)

	rating, err := e.r.Prompt("Rate yourself: (1) Missed it  (2) Partial  (3) Nailed it: ")
	if err != nil {
		return result{}, err
	}
	if ans == "" {
		ans = "(blank)"
	}
	return result{correct: rating == "3", kind: journal.KindScenario, detail: ans}, nil
}

func (e *Engine) explain(text string) {
	if text != "" {
		e.r.Info("  💡 " + text)
	}
}

func (e *Engine) appendAnswer(moduleID string, res result, now time.Time) {
	if err := e.rec.AppendAnswer(context.Background(), journal.AnswerEvent{
		SessionID: e.sessionID,
		ModuleID:  moduleID,
		Kind:      res.kind,
		Correct:   res.correct,
		Detail:    res.detail,
		At:        now,
	}); err != nil {
		slog.Warn("journal answer event", "error", err)
	}
}
