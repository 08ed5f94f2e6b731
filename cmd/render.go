package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fuzzydate/pkg/models"

	"github.com/charmbracelet/lipgloss"
)

// phraseError carries the phrase a parse failure points into so it can be
// shown with a caret.
type phraseError struct {
	phrase string
	err    error
}

func (e *phraseError) Error() string {
	return e.err.Error()
}

func (e *phraseError) Unwrap() error {
	return e.err
}

// renderPhraseError prints the phrase, a caret under the failing position for
// lex and parse errors, and the message.
func renderPhraseError(w io.Writer, pe *phraseError) {
	fmt.Fprintln(w, "  "+Primary(pe.phrase))

	if col, ok := caretColumn(pe.phrase, pe.err); ok {
		fmt.Fprintln(w, "  "+strings.Repeat(" ", col)+Error("^"))
	}

	fmt.Fprintln(w, Error("error: ")+pe.err.Error())
}

// caretColumn converts the error's byte offset to a display column.
func caretColumn(phrase string, err error) (int, bool) {
	var positioned models.Positioned
	if !errors.As(err, &positioned) {
		return 0, false
	}

	pos := min(max(positioned.Position(), 0), len(phrase))

	return lipgloss.Width(phrase[:pos]), true
}
