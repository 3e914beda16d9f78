package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/norlearn/internal/ui/theme"
)

// ErrInterrupted is returned from Prompt when the user hits Ctrl-C. Like end
// of input, it means "quit the current menu level".
var ErrInterrupted = errors.New("interrupted")

const ruleWidth = 68

// Terminal renders to a writer and reads line input, styled with lipgloss.
// Input is pumped through a channel so a pending Prompt can also observe an
// interrupt signal.
type Terminal struct {
	out     io.Writer
	color   bool
	lines   chan string
	readErr chan error
	sig     chan os.Signal

	// Input errors are terminal: once the reader goroutine stops there will
	// never be another line, so the error is kept and returned from every
	// later Prompt instead of blocking on a dead channel.
	err error
}

// NewTerminal creates a renderer over the given streams. When color is false
// all styling is suppressed.
func NewTerminal(in io.Reader, out io.Writer, color bool) *Terminal {
	t := &Terminal{
		out:     out,
		color:   color,
		lines:   make(chan string),
		readErr: make(chan error, 1),
		sig:     make(chan os.Signal, 1),
	}
	signal.Notify(t.sig, os.Interrupt)

	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			t.lines <- sc.Text()
		}
		if err := sc.Err(); err != nil {
			t.readErr <- err
			return
		}
		t.readErr <- io.EOF
	}()

	return t
}

func (t *Terminal) style(st lipgloss.Style, s string) string {
	if !t.color {
		return s
	}
	return st.Render(s)
}

// Header prints a ruled section header.
func (t *Terminal) Header(text string) {
	rule := strings.Repeat("━", ruleWidth)
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.style(theme.Rule, rule))
	fmt.Fprintln(t.out, "  "+t.style(theme.Title, text))
	fmt.Fprintln(t.out, t.style(theme.Rule, rule))
	fmt.Fprintln(t.out)
}

// Sub prints a secondary heading.
func (t *Terminal) Sub(text string) {
	fmt.Fprintln(t.out, "\n"+t.style(theme.Subheader, "▸ "+text))
}

// Print writes body text followed by a newline.
func (t *Terminal) Print(text string) {
	fmt.Fprintln(t.out, t.style(theme.Body, text))
}

// Success prints a check-marked confirmation line.
func (t *Terminal) Success(text string) {
	fmt.Fprintln(t.out, t.style(theme.Correct, "✓ "+text))
}

// Error prints a cross-marked failure line.
func (t *Terminal) Error(text string) {
	fmt.Fprintln(t.out, t.style(theme.Incorrect, "✗ "+text))
}

// Info prints a dim informational line.
func (t *Terminal) Info(text string) {
	fmt.Fprintln(t.out, t.style(theme.Hint, text))
}

// Paragraphs shows text a page at a time. The reader advances with Enter and
// may abort the remaining pages with "q".
func (t *Terminal) Paragraphs(text string, pageSize int) {
	if pageSize <= 0 {
		t.Print(text)
		return
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := 0; i < len(lines); i += pageSize {
		end := i + pageSize
		if end > len(lines) {
			end = len(lines)
		}
		t.Print(strings.Join(lines[i:end], "\n"))
		if end < len(lines) {
			t.Info("\n[Press Enter for more, or 'q' to skip]")
			r, err := t.Prompt("")
			if err != nil || strings.EqualFold(r, "q") {
				return
			}
		}
	}
}

// Prompt shows the label and blocks for one line of input, trimmed of
// surrounding whitespace. End of input returns io.EOF; Ctrl-C returns
// ErrInterrupted.
func (t *Terminal) Prompt(label string) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	fmt.Fprintf(t.out, "\n%s %s", t.style(theme.PromptMark, "❯"), label)
	select {
	case line := <-t.lines:
		return strings.TrimSpace(line), nil
	case err := <-t.readErr:
		t.err = err
		fmt.Fprintln(t.out)
		return "", err
	case <-t.sig:
		fmt.Fprintln(t.out)
		return "", ErrInterrupted
	}
}
