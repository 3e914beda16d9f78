package assess

import (
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/norlearn/internal/catalog"
	"github.com/abhisek/norlearn/internal/journal"
	"github.com/abhisek/norlearn/internal/progress"
)

// scriptedRenderer feeds canned answers to Prompt and records everything
// printed. When the script runs out it reports end of input, the same quit
// signal the terminal renderer produces.
type scriptedRenderer struct {
	answers []string
	output  []string
}

func (r *scriptedRenderer) record(text string)              { r.output = append(r.output, text) }
func (r *scriptedRenderer) Header(text string)              { r.record(text) }
func (r *scriptedRenderer) Sub(text string)                 { r.record(text) }
func (r *scriptedRenderer) Print(text string)               { r.record(text) }
func (r *scriptedRenderer) Success(text string)             { r.record(text) }
func (r *scriptedRenderer) Error(text string)               { r.record(text) }
func (r *scriptedRenderer) Info(text string)                { r.record(text) }
func (r *scriptedRenderer) Paragraphs(text string, _ int)   { r.record(text) }

func (r *scriptedRenderer) Prompt(label string) (string, error) {
	if len(r.answers) == 0 {
		return "", io.EOF
	}
	ans := r.answers[0]
	r.answers = r.answers[1:]
	return ans, nil
}

func (r *scriptedRenderer) contains(substr string) bool {
	for _, line := range r.output {
		if line == substr {
			return true
		}
	}
	return false
}

// savedCounter counts persistence calls in place of the JSON file store.
type savedCounter struct {
	saves int
	last  *progress.State
}

func (c *savedCounter) Save(s *progress.State) error {
	c.saves++
	c.last = s
	return nil
}

func testEngine(answers ...string) (*Engine, *scriptedRenderer, *savedCounter) {
	r := &scriptedRenderer{answers: answers}
	saver := &savedCounter{}
	rng := rand.New(rand.NewPCG(1, 2))
	return New(r, rng, saver, journal.Nop{}, "test-session"), r, saver
}

var quizDay = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestRunQuizEmpty(t *testing.T) {
	e, _, _ := testEngine()
	_, err := e.RunQuiz("mod", "Module", nil, progress.NewState(), quizDay)
	require.ErrorIs(t, err, ErrNoQuestions)
}

func TestRunQuizMultipleChoiceCorrect(t *testing.T) {
	questions := []catalog.Question{
		catalog.MultipleChoice{
			Prompt:  "Which database covers clinical trials?",
			Options: []string{"Trialtrove", "Biomedtracker", "Datamonitor"},
			Correct: "Trialtrove",
		},
	}
	e, r, saver := testEngine("1")

	st := progress.NewState()
	attempt, err := e.RunQuiz("products", "Products", questions, st, quizDay)
	require.NoError(t, err)

	assert.Equal(t, 1, attempt.Correct)
	assert.Equal(t, 1, attempt.Total)
	assert.Equal(t, 100, attempt.ScorePercent)
	assert.Equal(t, "2025-03-10", attempt.Date)

	assert.Equal(t, 100, st.Mastery["products"])
	require.Len(t, st.QuizAttempts["products"], 1)
	assert.Equal(t, 1, saver.saves)
	assert.True(t, r.contains("Score: 1/1 (100%)"))
	assert.True(t, r.contains("Excellent — module mastered!"))
}

func TestRunQuizMultipleChoiceRawTextFallback(t *testing.T) {
	questions := []catalog.Question{
		catalog.MultipleChoice{
			Prompt:  "Pick one",
			Options: []string{"Alpha", "Beta"},
			Correct: "Alpha",
		},
	}
	// Unparseable index: the raw text is graded against the correct option.
	e, _, _ := testEngine("Alpha")

	st := progress.NewState()
	attempt, err := e.RunQuiz("mod", "Module", questions, st, quizDay)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt.Correct)
}

func TestRunQuizFillBlankIncorrect(t *testing.T) {
	questions := []catalog.Question{
		catalog.FillBlank{Prompt: "The gold-standard pipeline database is ____.", Answer: "Pharmaprojects"},
	}
	e, r, _ := testEngine("sitetrove")

	st := progress.NewState()
	attempt, err := e.RunQuiz("products", "Products", questions, st, quizDay)
	require.NoError(t, err)

	assert.Equal(t, 0, attempt.Correct)
	assert.Equal(t, 0, attempt.ScorePercent)
	assert.Equal(t, 0, st.Mastery["products"])
	assert.True(t, r.contains("Needs work — re-read the lesson material."))
}

func TestRunQuizFillBlankCaseInsensitive(t *testing.T) {
	questions := []catalog.Question{
		catalog.FillBlank{Prompt: "____", Answer: "Pharmaprojects"},
	}
	e, _, _ := testEngine("  PHARMAPROJECTS ")

	attempt, err := e.RunQuiz("mod", "Module", questions, progress.NewState(), quizDay)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt.Correct)
}

func TestRunQuizMatchingSinglePair(t *testing.T) {
	questions := []catalog.Question{
		catalog.Matching{
			Prompt: "Match product to domain",
			Pairs:  map[string]string{"Trialtrove": "Clinical trials"},
		},
	}
	// One pair means one displayed value, so "1" is always the right index.
	e, _, _ := testEngine("1")

	attempt, err := e.RunQuiz("mod", "Module", questions, progress.NewState(), quizDay)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt.Correct)
}

func TestRunQuizMatchingPartialIsIncorrect(t *testing.T) {
	questions := []catalog.Question{
		catalog.Matching{
			Prompt: "Match",
			Pairs:  map[string]string{"Trialtrove": "Clinical trials"},
		},
	}
	// Unparseable selection leaves the pair unmatched.
	e, _, _ := testEngine("x")

	attempt, err := e.RunQuiz("mod", "Module", questions, progress.NewState(), quizDay)
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.Correct)
}

func TestRunQuizMatchingPartialScoreReported(t *testing.T) {
	questions := []catalog.Question{
		catalog.Matching{
			Prompt: "Match",
			Pairs:  map[string]string{"a": "x", "b": "y"},
		},
	}
	// Choosing the first displayed value for both keys matches exactly one
	// pair whichever way the values were shuffled.
	e, r, _ := testEngine("1", "1")

	attempt, err := e.RunQuiz("mod", "Module", questions, progress.NewState(), quizDay)
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.Correct)
	assert.True(t, r.contains("\n  Matched 1/2"))
}

func TestRunQuizScenarioSelfRated(t *testing.T) {
	questions := []catalog.Question{
		catalog.Scenario{Prompt: "A client asks...", ModelAnswer: "Recommend Trialtrove."},
	}

	// Rating 3 counts as correct.
	e, _, _ := testEngine("my answer", "3")
	attempt, err := e.RunQuiz("mod", "Module", questions, progress.NewState(), quizDay)
	require.NoError(t, err)
	assert.Equal(t, 1, attempt.Correct)

	// Any other rating does not.
	e2, _, _ := testEngine("my answer", "2")
	attempt, err = e2.RunQuiz("mod", "Module", questions, progress.NewState(), quizDay)
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.Correct)
}

func TestRunQuizQuitAbortsWithoutRecording(t *testing.T) {
	questions := []catalog.Question{
		catalog.FillBlank{Prompt: "____", Answer: "x"},
		catalog.FillBlank{Prompt: "____", Answer: "y"},
	}
	// One answer, then end of input mid-quiz.
	e, _, saver := testEngine("x")

	st := progress.NewState()
	_, err := e.RunQuiz("mod", "Module", questions, st, quizDay)
	require.ErrorIs(t, err, io.EOF)

	assert.Empty(t, st.QuizAttempts["mod"])
	assert.Equal(t, 0, st.Mastery["mod"])
	assert.Equal(t, 0, saver.saves)
}

func TestRunQuizMasteryMonotonic(t *testing.T) {
	good := []catalog.Question{
		catalog.FillBlank{Prompt: "____", Answer: "right"},
	}

	st := progress.NewState()

	e, _, _ := testEngine("right")
	_, err := e.RunQuiz("mod", "Module", good, st, quizDay)
	require.NoError(t, err)
	assert.Equal(t, 100, st.Mastery["mod"])

	// A failed retake keeps the best score.
	e2, _, _ := testEngine("wrong")
	_, err = e2.RunQuiz("mod", "Module", good, st, quizDay)
	require.NoError(t, err)
	assert.Equal(t, 100, st.Mastery["mod"])
	assert.Len(t, st.QuizAttempts["mod"], 2)
}
