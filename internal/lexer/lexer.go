// Package lexer turns a date phrase into classified tokens.
package lexer

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"fuzzydate/pkg/models"
)

var (
	// 2024-03-05
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	// 10:30, 10:30:15, 10:30:15.250, 10:30pm, 10:30:00Z, 10:30+02:00, 10:30-0700
	isoTimePattern = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}(?::\d{2}(?:\.\d{1,9})?)?(?:am|pm)?(?:z|[+-]\d{2}:?\d{2})?`)
)

const punctuation = ",/-.:+'"

// Tokenize scans text into a fresh token slice.
func Tokenize(text string) ([]models.Token, error) {
	var tokens []models.Token

	for tok, err := range Scan(text) {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// Scan returns a lazy sequence of the tokens in text. Each range over the
// sequence starts from the beginning of text. The sequence ends after the
// first error.
func Scan(text string) iter.Seq2[models.Token, error] {
	return func(yield func(models.Token, error) bool) {
		s := &scanner{src: text}

		for {
			tok, ok, err := s.next()
			if err != nil {
				yield(models.Token{}, err)

				return
			}

			if !ok || !yield(tok, nil) {
				return
			}
		}
	}
}

type scanner struct {
	src string
	pos int
	// set after an ISO date so a directly following "T10:00" is read as a time
	afterDate bool
}

func (s *scanner) next() (models.Token, bool, error) {
	if s.afterDate {
		s.afterDate = false

		if tok, ok := s.joinedTime(); ok {
			return tok, true, nil
		}
	}

	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if r == utf8.RuneError && size == 1 {
			return models.Token{}, false, &models.LexError{Pos: s.pos, Text: s.src[s.pos : s.pos+1]}
		}

		if !unicode.IsSpace(r) {
			break
		}

		s.pos += size
	}

	if s.pos >= len(s.src) {
		return models.Token{}, false, nil
	}

	start := s.pos
	r, size := utf8.DecodeRuneInString(s.src[start:])

	switch {
	case isDigit(r):
		return s.number(), true, nil
	case unicode.IsLetter(r):
		s.pos = s.scanWhile(start, unicode.IsLetter)

		return s.emit(models.TokenWord, start, s.pos), true, nil
	case strings.ContainsRune(punctuation, r):
		s.pos += size

		return s.emit(models.TokenPunctuation, start, s.pos), true, nil
	case !unicode.IsPrint(r):
		return models.Token{}, false, &models.LexError{Pos: start, Text: string(r)}
	default:
		end, err := s.scanSymbols(start)
		if err != nil {
			return models.Token{}, false, err
		}

		s.pos = end

		return s.emit(models.TokenWord, start, end), true, nil
	}
}

// number scans a token that starts with a digit: an ISO date or time, an
// ordinal, or a plain number.
func (s *scanner) number() models.Token {
	start := s.pos
	rest := s.src[start:]

	if loc := isoDatePattern.FindStringIndex(rest); loc != nil && !s.digitAt(start+loc[1]) {
		s.pos = start + loc[1]
		s.afterDate = true

		return s.emit(models.TokenISODate, start, s.pos)
	}

	if loc := isoTimePattern.FindStringIndex(rest); loc != nil && s.boundary(start+loc[1]) {
		s.pos = start + loc[1]

		return s.emit(models.TokenISOTime, start, s.pos)
	}

	end := s.scanWhile(start, isDigit)

	if end+2 <= len(s.src) && s.boundary(end+2) {
		switch strings.ToLower(s.src[end : end+2]) {
		case "st", "nd", "rd", "th":
			s.pos = end + 2

			return s.emit(models.TokenOrdinal, start, s.pos)
		}
	}

	s.pos = end

	return s.emit(models.TokenNumber, start, end)
}

// joinedTime reads the time half of "2024-03-05T10:00:00Z".
func (s *scanner) joinedTime() (models.Token, bool) {
	if s.pos >= len(s.src) || (s.src[s.pos] != 't' && s.src[s.pos] != 'T') {
		return models.Token{}, false
	}

	start := s.pos + 1

	loc := isoTimePattern.FindStringIndex(s.src[start:])
	if loc == nil || !s.boundary(start+loc[1]) {
		return models.Token{}, false
	}

	s.pos = start + loc[1]

	return s.emit(models.TokenISOTime, start, s.pos), true
}

// scanSymbols consumes a run of printable symbols that are neither letters,
// digits, spaces nor punctuation.
func (s *scanner) scanSymbols(start int) (int, error) {
	i := start
	for i < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[i:])
		if r == utf8.RuneError && size == 1 {
			return 0, &models.LexError{Pos: i, Text: s.src[i : i+1]}
		}

		if unicode.IsSpace(r) || unicode.IsLetter(r) || isDigit(r) || strings.ContainsRune(punctuation, r) {
			break
		}

		if !unicode.IsPrint(r) {
			return 0, &models.LexError{Pos: i, Text: string(r)}
		}

		i += size
	}

	return i, nil
}

func (s *scanner) scanWhile(i int, pred func(rune) bool) int {
	for i < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[i:])
		if !pred(r) {
			break
		}

		i += size
	}

	return i
}

// boundary reports whether no letter or digit starts at i.
func (s *scanner) boundary(i int) bool {
	if i >= len(s.src) {
		return true
	}

	r, _ := utf8.DecodeRuneInString(s.src[i:])

	return !unicode.IsLetter(r) && !isDigit(r)
}

func (s *scanner) digitAt(i int) bool {
	return i < len(s.src) && isDigit(rune(s.src[i]))
}

func (s *scanner) emit(kind models.TokenKind, start, end int) models.Token {
	return models.Token{Kind: kind, Lexeme: strings.ToLower(s.src[start:end]), Pos: start}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
