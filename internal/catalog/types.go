package catalog

import "sort"

// Catalog is the immutable curriculum: ordered modules with lessons and quiz
// banks, plus the flashcard deck and speed-round pairs. It is constructed once
// at startup and never mutated.
type Catalog struct {
	Modules    []Module
	Flashcards []Flashcard
	SpeedPairs []SpeedPair
}

// Module is one curriculum unit. Order is a unique ascending integer that
// drives lesson sequencing.
type Module struct {
	ID        string
	Title     string
	Order     int
	Lessons   []Lesson
	Questions []Question
}

// Lesson is a single reading unit within a module.
type Lesson struct {
	ID      string
	Title   string
	Content string
}

// LessonKey addresses a lesson across the whole catalog.
func LessonKey(moduleID, lessonID string) string {
	return moduleID + "/" + lessonID
}

// Flashcard is a front/back drill card.
type Flashcard struct {
	Front string
	Back  string
}

// SpeedPair is a description → expected-label pair for the speed round.
type SpeedPair struct {
	Description string
	Label       string
}

// Question is the closed set of quiz question kinds. Grading dispatches on
// the concrete type; there is no string tag outside the wire format.
type Question interface {
	question()
}

// MultipleChoice asks the learner to pick one of Options by 1-based index.
type MultipleChoice struct {
	Prompt      string
	Options     []string
	Correct     string
	Explanation string
}

// FillBlank asks for free text compared case-insensitively after trimming.
type FillBlank struct {
	Prompt      string
	Answer      string
	Explanation string
}

// Matching asks the learner to pair each left-hand key with the right-hand
// value, presented shuffled. Pairs maps left key → correct right value.
type Matching struct {
	Prompt string
	Pairs  map[string]string
}

// Scenario has no automatic grading; the model answer is revealed and the
// learner self-rates.
type Scenario struct {
	Prompt      string
	ModelAnswer string
}

func (MultipleChoice) question() {}
func (FillBlank) question()      {}
func (Matching) question()       {}
func (Scenario) question()       {}

// TotalLessons returns the number of lessons across all modules.
func (c *Catalog) TotalLessons() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

// Module returns the module with the given id.
func (c *Catalog) Module(id string) (Module, bool) {
	for _, m := range c.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// QuizModules returns the modules that have a non-empty quiz bank, in
// curriculum order.
func (c *Catalog) QuizModules() []Module {
	var out []Module
	for _, m := range c.Modules {
		if len(m.Questions) > 0 {
			out = append(out, m)
		}
	}
	return out
}

// sortModules orders modules by ascending Order. Called once at load time.
func sortModules(mods []Module) {
	sort.Slice(mods, func(i, j int) bool { return mods[i].Order < mods[j].Order })
}
