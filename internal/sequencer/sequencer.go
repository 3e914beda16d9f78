// Package sequencer picks the next lesson to present from the catalog's
// curriculum order.
package sequencer

import (
	"github.com/abhisek/norlearn/internal/catalog"
	"github.com/abhisek/norlearn/internal/progress"
)

// Next returns the first lesson (in ascending module order, then lesson
// sequence) whose composite key is not in completed. ok is false when every
// lesson in the catalog has been completed. Pure function of its inputs.
func Next(cat *catalog.Catalog, completed map[string]bool) (catalog.Module, catalog.Lesson, bool) {
	for _, m := range cat.Modules {
		for _, l := range m.Lessons {
			if !completed[catalog.LessonKey(m.ID, l.ID)] {
				return m, l, true
			}
		}
	}
	return catalog.Module{}, catalog.Lesson{}, false
}

// MarkComplete records the lesson as completed. Idempotent; the caller is
// responsible for persisting the state.
func MarkComplete(s *progress.State, moduleID, lessonID string) {
	s.CompleteLesson(catalog.LessonKey(moduleID, lessonID))
}
