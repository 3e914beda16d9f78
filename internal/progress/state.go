package progress

// DayFormat is the ISO calendar-date layout used everywhere a date is
// persisted or compared.
const DayFormat = "2006-01-02"

// Attempt is one recorded quiz attempt for a module.
type Attempt struct {
	Date         string `json:"date"`
	ScorePercent int    `json:"score_percent"`
	Correct      int    `json:"correct"`
	Total        int    `json:"total"`
}

// Session is one completed learning session.
type Session struct {
	Date            string  `json:"date"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// State is the single learner's durable progress record. It is owned
// exclusively by the running process and persisted after every mutation.
type State struct {
	LessonsCompleted []string             `json:"lessons_completed"`
	QuizAttempts     map[string][]Attempt `json:"quiz_attempts"`
	Mastery          map[string]int       `json:"mastery"`
	StreakDays       []string             `json:"streak_days"`
	Sessions         []Session            `json:"sessions"`
	TotalTimeMinutes float64              `json:"total_time_minutes"`
}

// NewState returns an empty progress record for a first run.
func NewState() *State {
	return &State{
		QuizAttempts: make(map[string][]Attempt),
		Mastery:      make(map[string]int),
	}
}

// normalize defaults missing fields after deserialization so that partially
// written or older files load as their empty forms.
func (s *State) normalize() {
	if s.QuizAttempts == nil {
		s.QuizAttempts = make(map[string][]Attempt)
	}
	if s.Mastery == nil {
		s.Mastery = make(map[string]int)
	}
}

// CompletedSet returns lesson completion as a membership set.
func (s *State) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(s.LessonsCompleted))
	for _, k := range s.LessonsCompleted {
		set[k] = true
	}
	return set
}

// IsCompleted reports whether the composite lesson key has been completed.
func (s *State) IsCompleted(key string) bool {
	for _, k := range s.LessonsCompleted {
		if k == key {
			return true
		}
	}
	return false
}

// CompleteLesson inserts the composite lesson key. Idempotent.
func (s *State) CompleteLesson(key string) {
	if s.IsCompleted(key) {
		return
	}
	s.LessonsCompleted = append(s.LessonsCompleted, key)
}

// RecordAttempt appends a quiz attempt to the module's history.
func (s *State) RecordAttempt(moduleID string, a Attempt) {
	s.QuizAttempts[moduleID] = append(s.QuizAttempts[moduleID], a)
}
