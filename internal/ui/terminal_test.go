package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		width   int
		want    string
	}{
		{"empty", 0, 10, 4, "░░░░ 0%"},
		{"half", 5, 10, 4, "██░░ 50%"},
		{"full", 10, 10, 4, "████ 100%"},
		{"zero total", 0, 0, 4, "░░░░ 0%"},
		{"over total clamps", 12, 10, 4, "████ 120%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bar(tt.current, tt.total, tt.width))
		})
	}
}

func TestTerminalPrompt(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("  hello  \nworld\n"), &out, false)

	got, err := term.Prompt("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = term.Prompt("Again: ")
	require.NoError(t, err)
	assert.Equal(t, "world", got)

	_, err = term.Prompt("Done: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Contains(t, out.String(), "Name: ")
}

func TestTerminalPlainOutput(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, false)

	term.Success("done")
	term.Error("failed")
	term.Info("note")

	s := out.String()
	assert.Contains(t, s, "✓ done")
	assert.Contains(t, s, "✗ failed")
	assert.Contains(t, s, "note")
}

func TestParagraphsSinglePage(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, false)

	term.Paragraphs("line one\nline two", 25)
	s := out.String()
	assert.Contains(t, s, "line one")
	assert.Contains(t, s, "line two")
	assert.NotContains(t, s, "Press Enter for more")
}

func TestParagraphsPaged(t *testing.T) {
	var out bytes.Buffer
	// One Enter advances past the first page break.
	term := NewTerminal(strings.NewReader("\n"), &out, false)

	term.Paragraphs("a\nb\nc\nd", 2)
	s := out.String()
	assert.Contains(t, s, "Press Enter for more")
	assert.Contains(t, s, "c")
	assert.Contains(t, s, "d")
}

func TestPromptAfterPaginationEOF(t *testing.T) {
	var out bytes.Buffer
	// Empty input: the page-break prompt inside Paragraphs consumes the one
	// EOF the reader goroutine delivers.
	term := NewTerminal(strings.NewReader(""), &out, false)

	term.Paragraphs("a\nb\nc\nd", 2)

	// Every later prompt must still report end of input instead of blocking.
	done := make(chan error, 1)
	go func() {
		_, err := term.Prompt("Take the quiz? ")
		done <- err
	}()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, io.EOF)
	case <-time.After(2 * time.Second):
		t.Fatal("Prompt blocked after pagination consumed end of input")
	}

	_, err := term.Prompt("Again: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestParagraphsSkip(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("q\n"), &out, false)

	term.Paragraphs("a\nb\nc\nd", 2)
	s := out.String()
	assert.Contains(t, s, "a")
	assert.NotContains(t, s, "c")
}
