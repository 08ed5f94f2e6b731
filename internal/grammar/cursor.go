package grammar

import (
	"fuzzydate/pkg/models"
)

// cursor is an immutable position in the token slice. Productions take a
// cursor and return the cursor just past what they consumed.
type cursor struct {
	toks []models.Token
	pos  int
}

func (c cursor) done() bool {
	return c.pos >= len(c.toks)
}

func (c cursor) peek() (models.Token, bool) {
	return c.peekAt(0)
}

func (c cursor) peekAt(n int) (models.Token, bool) {
	if c.pos+n < 0 || c.pos+n >= len(c.toks) {
		return models.Token{}, false
	}

	return c.toks[c.pos+n], true
}

func (c cursor) advance(n int) cursor {
	return cursor{toks: c.toks, pos: c.pos + n}
}

// is reports whether the token n ahead is the word or punctuation lexeme.
func (c cursor) is(n int, lexeme string) bool {
	tok, ok := c.peekAt(n)

	return ok && tok.Is(lexeme)
}

// word returns the lexeme of the WORD token n ahead, or "".
func (c cursor) word(n int) string {
	tok, ok := c.peekAt(n)
	if !ok || tok.Kind != models.TokenWord {
		return ""
	}

	return tok.Lexeme
}

func (c cursor) kind(n int) (models.TokenKind, bool) {
	tok, ok := c.peekAt(n)

	return tok.Kind, ok
}

// fail builds a ParseError at the cursor. At end of input the error points
// just past the last token.
func (c cursor) fail(expected ...string) error {
	if tok, ok := c.peek(); ok {
		return &models.ParseError{Pos: tok.Pos, Index: c.pos, Found: tok.Lexeme, Expected: expected}
	}

	end := 0
	if n := len(c.toks); n > 0 {
		end = c.toks[n-1].End()
	}

	return &models.ParseError{Pos: end, Index: c.pos, Expected: expected}
}
