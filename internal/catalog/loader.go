package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed content.json
var defaultContent []byte

// Wire format. The "type" tag exists only here; Parse converts each question
// into its concrete kind.
type catalogDoc struct {
	Modules    []moduleDoc    `json:"modules"`
	Flashcards []flashcardDoc `json:"flashcards"`
	SpeedPairs []speedPairDoc `json:"speed_pairs"`
}

type moduleDoc struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Order     int           `json:"order"`
	Lessons   []lessonDoc   `json:"lessons"`
	Questions []questionDoc `json:"questions"`
}

type lessonDoc struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type questionDoc struct {
	Type        string            `json:"type"`
	Prompt      string            `json:"prompt"`
	Options     []string          `json:"options,omitempty"`
	Answer      string            `json:"answer,omitempty"`
	Explanation string            `json:"explanation,omitempty"`
	Pairs       map[string]string `json:"pairs,omitempty"`
	ModelAnswer string            `json:"model_answer,omitempty"`
}

type flashcardDoc struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type speedPairDoc struct {
	Description string `json:"description"`
	Label       string `json:"label"`
}

// Default parses the embedded curriculum.
func Default() (*Catalog, error) {
	return Parse(defaultContent)
}

// LoadFile reads and parses a catalog content file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse validates raw catalog JSON against the schema and decodes it into an
// immutable Catalog, with modules sorted by ascending order.
func Parse(raw []byte) (*Catalog, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc catalogDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cat := &Catalog{}
	seenID := make(map[string]bool)
	seenOrder := make(map[int]bool)

	for _, md := range doc.Modules {
		if seenID[md.ID] {
			return nil, fmt.Errorf("duplicate module id %q", md.ID)
		}
		seenID[md.ID] = true
		if seenOrder[md.Order] {
			return nil, fmt.Errorf("module %q: duplicate order %d", md.ID, md.Order)
		}
		seenOrder[md.Order] = true

		m := Module{ID: md.ID, Title: md.Title, Order: md.Order}

		seenLesson := make(map[string]bool)
		for _, ld := range md.Lessons {
			if seenLesson[ld.ID] {
				return nil, fmt.Errorf("module %q: duplicate lesson id %q", md.ID, ld.ID)
			}
			seenLesson[ld.ID] = true
			m.Lessons = append(m.Lessons, Lesson(ld))
		}

		for i, qd := range md.Questions {
			q, err := decodeQuestion(qd)
			if err != nil {
				return nil, fmt.Errorf("module %q: question %d: %w", md.ID, i+1, err)
			}
			m.Questions = append(m.Questions, q)
		}

		cat.Modules = append(cat.Modules, m)
	}
	sortModules(cat.Modules)

	for _, fd := range doc.Flashcards {
		cat.Flashcards = append(cat.Flashcards, Flashcard(fd))
	}
	for _, sd := range doc.SpeedPairs {
		cat.SpeedPairs = append(cat.SpeedPairs, SpeedPair(sd))
	}

	return cat, nil
}

// decodeQuestion enforces the kind-specific field requirements the schema
// cannot express and returns the concrete question type.
func decodeQuestion(qd questionDoc) (Question, error) {
	switch qd.Type {
	case "multiple_choice":
		if len(qd.Options) < 2 {
			return nil, fmt.Errorf("multiple choice needs at least 2 options, got %d", len(qd.Options))
		}
		if qd.Answer == "" {
			return nil, fmt.Errorf("multiple choice missing answer")
		}
		found := false
		for _, o := range qd.Options {
			if o == qd.Answer {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("answer %q is not one of the options", qd.Answer)
		}
		return MultipleChoice{
			Prompt:      qd.Prompt,
			Options:     qd.Options,
			Correct:     qd.Answer,
			Explanation: qd.Explanation,
		}, nil

	case "fill_blank":
		if qd.Answer == "" {
			return nil, fmt.Errorf("fill blank missing answer")
		}
		return FillBlank{Prompt: qd.Prompt, Answer: qd.Answer, Explanation: qd.Explanation}, nil

	case "matching":
		if len(qd.Pairs) == 0 {
			return nil, fmt.Errorf("matching missing pairs")
		}
		return Matching{Prompt: qd.Prompt, Pairs: qd.Pairs}, nil

	case "scenario":
		if qd.ModelAnswer == "" {
			return nil, fmt.Errorf("scenario missing model answer")
		}
		return Scenario{Prompt: qd.Prompt, ModelAnswer: qd.ModelAnswer}, nil

	default:
		return nil, fmt.Errorf("unknown question type %q", qd.Type)
	}
}
