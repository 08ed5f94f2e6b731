package models

import (
	"fmt"
	"strings"
)

// LexError reports input that cannot be tokenized at all: invalid UTF-8 or
// a non-printable character. Unknown words are not lex errors.
type LexError struct {
	Pos  int
	Text string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Text, e.Pos)
}

// Position returns the byte offset the error points at.
func (e *LexError) Position() int {
	return e.Pos
}

// ParseError reports tokens that match no grammar production, or input left
// over after a complete phrase. Found is empty at end of input.
type ParseError struct {
	Pos      int
	Index    int
	Found    string
	Expected []string
}

func (e *ParseError) Error() string {
	found := "end of input"
	if e.Found != "" {
		found = fmt.Sprintf("%q", e.Found)
	}

	if len(e.Expected) == 0 {
		return fmt.Sprintf("unexpected %s at position %d", found, e.Pos)
	}

	return fmt.Sprintf("unexpected %s at position %d: expected %s", found, e.Pos, joinAlternatives(e.Expected))
}

func (e *ParseError) Position() int {
	return e.Pos
}

// RangeError reports a resolved field outside its valid domain, such as
// month 13 or February 30.
type RangeError struct {
	Field string
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range", e.Field, e.Value)
}

// Positioned is implemented by errors that point into the input phrase.
type Positioned interface {
	error
	Position() int
}

func joinAlternatives(alts []string) string {
	switch len(alts) {
	case 1:
		return alts[0]
	case 2:
		return alts[0] + " or " + alts[1]
	default:
		return strings.Join(alts[:len(alts)-1], ", ") + " or " + alts[len(alts)-1]
	}
}
