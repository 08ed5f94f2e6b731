package models

import "fmt"

// TokenKind classifies a lexeme produced by the tokenizer.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenOrdinal
	TokenWord
	TokenISODate
	TokenISOTime
	TokenPunctuation
)

var tokenKindNames = map[TokenKind]string{
	TokenNumber:      "NUMBER",
	TokenOrdinal:     "ORDINAL",
	TokenWord:        "WORD",
	TokenISODate:     "ISO_DATE",
	TokenISOTime:     "ISO_TIME",
	TokenPunctuation: "PUNCTUATION",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// MarshalText lets token kinds print by name in YAML and JSON output.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a single classified lexeme. Lexeme is lower-cased; Pos is the byte
// offset of the lexeme in the input text.
type Token struct {
	Kind   TokenKind `json:"kind"   yaml:"kind"`
	Lexeme string    `json:"lexeme" yaml:"lexeme"`
	Pos    int       `json:"pos"    yaml:"pos"`
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Pos + len(t.Lexeme)
}

// Is reports whether the token is a word or punctuation with the given lexeme.
func (t Token) Is(lexeme string) bool {
	return (t.Kind == TokenWord || t.Kind == TokenPunctuation) && t.Lexeme == lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q@%d)", t.Kind, t.Lexeme, t.Pos)
}
