// Package ui defines the renderer boundary between the learning engine and
// the terminal. The engine only ever talks to a Renderer; it performs no
// device I/O itself.
package ui

import (
	"fmt"
	"strings"
)

// Renderer is the presentation surface the engine draws on. Paragraphs shows
// long text a page at a time (the reader may abort remaining pages); Prompt
// blocks for one line of input. A Prompt error (end of input or an interrupt)
// is the quit signal for whatever menu level is active.
type Renderer interface {
	Header(text string)
	Sub(text string)
	Print(text string)
	Success(text string)
	Error(text string)
	Info(text string)
	Paragraphs(text string, pageSize int)
	Prompt(label string) (string, error)
}

// Bar renders a text progress bar with a percentage suffix.
func Bar(current, total, width int) string {
	filled := 0
	pct := 0
	if total > 0 {
		filled = width * current / total
		pct = 100 * current / total
	}
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("%s%s %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		pct)
}
