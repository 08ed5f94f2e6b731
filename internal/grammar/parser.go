// Package grammar parses token sequences into expression trees.
//
// The grammar is deterministic: at each decision point the productions are
// tried in a fixed priority order (literals, weekday references, anchor
// keywords, relative offsets, combinators) and the first one whose leading
// tokens match is taken. A taken production either succeeds or fails; the
// parser never backtracks into an alternative.
package grammar

import (
	"fuzzydate/internal/lexer"
	"fuzzydate/pkg/models"
)

// slot records which halves of a timestamp a fragment sets.
type slot uint8

const (
	slotDate slot = 1 << iota
	slotTime

	slotBoth = slotDate | slotTime
)

type production func(cursor) ([]models.Part, slot, cursor, error)

var startExpected = []string{"a date", "a time", "a weekday", "a quantity"}

// Parse builds an expression tree from tokens. The whole token sequence must
// be consumed.
func Parse(tokens []models.Token) (*models.Expr, error) {
	c := cursor{toks: tokens}
	if c.done() {
		return nil, c.fail(startExpected...)
	}

	parts, c, err := parseExpression(c)
	if err != nil {
		return nil, err
	}

	if !c.done() {
		return nil, c.fail("end of input")
	}

	return &models.Expr{Parts: parts}, nil
}

// parseExpression := relative | chain
func parseExpression(c cursor) ([]models.Part, cursor, error) {
	if matchFragment(c, false) != nil {
		return parseChain(c, nil, 0, false)
	}

	if w := c.word(0); (w == lexer.WordAt || w == lexer.WordOn) && matchFragment(c.advance(1), w == lexer.WordAt) != nil {
		return parseChain(c, nil, 0, false)
	}

	if startsRelative(c) {
		return parseRelative(c)
	}

	return nil, c, c.fail(startExpected...)
}

// matchFragment returns the production whose leading tokens match at c, in
// priority order, or nil. bareHour allows a number without a meridiem to be
// read as an hour.
func matchFragment(c cursor, bareHour bool) production {
	kind, ok := c.kind(0)
	if !ok {
		return nil
	}

	isNumber := kind == models.TokenNumber

	switch {
	// 1. literals
	case kind == models.TokenISODate:
		return parseISODate
	case kind == models.TokenISOTime:
		return parseISOTime
	case isNumber && c.is(1, ".") && isKind(c, 2, models.TokenNumber) && isMeridiem(c.word(3)):
		return parseDottedClock
	case isNumber && isDateDelimiter(c) && isKind(c, 2, models.TokenNumber):
		return parseNumericDate
	case isMonth(c.word(0)) && (isKind(c, 1, models.TokenNumber) || isKind(c, 1, models.TokenOrdinal)):
		return parseMonthDate
	case kind == models.TokenOrdinal || (c.word(0) == lexer.WordThe && isKind(c, 1, models.TokenOrdinal)):
		return parseOrdinalDate
	case isNumber && isMonth(c.word(1)):
		return parseDayMonthDate
	case isNumber && (startsClock(c) || bareHour):
		return parseClockTime
	// 2. weekday references
	case isWeekday(c.word(0)) || (isModifier(c.word(0)) && isWeekday(c.word(1))):
		return parseWeekday
	// 3. anchor keywords
	case isAnchor(c.word(0)):
		return parseAnchor
	// 4. next/last <unit>
	case isModifier(c.word(0)) && isUnit(c.word(1)):
		return parseRelativeUnit
	}

	return nil
}

// parseChain := fragment { ["," | "at" | "on"] fragment }
//
// A chain sets the date and the time of day at most once each. With
// needJoiner set, the first fragment must be introduced by a joiner; this is
// how a chain continues after a relative phrase ("2 days ago at noon").
// A bare number is an hour after "at", or directly after a date while the
// time is still unset ("tomorrow 5").
func parseChain(c cursor, parts []models.Part, filled slot, needJoiner bool) ([]models.Part, cursor, error) {
	for {
		joiner, next := readJoiner(c)
		if joiner == "" && needJoiner {
			return parts, c, nil
		}

		bareHour := joiner == lexer.WordAt || joiner == "" && filled == slotDate

		prod := matchFragment(next, bareHour)
		if prod == nil {
			if joiner == "" {
				return parts, c, nil
			}

			return nil, next, next.fail(joinerExpects(joiner)...)
		}

		fragment, got, rest, err := prod(next)
		if err != nil {
			return nil, rest, err
		}

		switch {
		case joiner == lexer.WordAt && got&slotTime == 0:
			return nil, next, next.fail("a time")
		case joiner == lexer.WordOn && got&slotDate == 0:
			return nil, next, next.fail("a date")
		case got&filled != 0:
			return nil, next, next.fail(remaining(filled)...)
		}

		parts = append(parts, fragment...)
		filled |= got
		c = rest
		needJoiner = false
	}
}

func readJoiner(c cursor) (string, cursor) {
	if c.is(0, ",") {
		c = c.advance(1)
		if w := c.word(0); w == lexer.WordAt || w == lexer.WordOn {
			return w, c.advance(1)
		}

		return ",", c
	}

	if w := c.word(0); w == lexer.WordAt || w == lexer.WordOn {
		return w, c.advance(1)
	}

	return "", c
}

func joinerExpects(joiner string) []string {
	switch joiner {
	case lexer.WordAt:
		return []string{"a time"}
	case lexer.WordOn:
		return []string{"a date"}
	default:
		return []string{"a date", "a time"}
	}
}

func remaining(filled slot) []string {
	switch filled {
	case slotDate:
		return []string{"a time", "end of input"}
	case slotTime:
		return []string{"a date", "end of input"}
	default:
		return []string{"end of input"}
	}
}

// parseRelative := "in" offsets
//
//	| offsets ("ago" | "later") [chain]
//	| offsets ("after" | "from" | "before") expression
//
// "X after Y" resolves Y first and then applies X, so Y's parts come first.
func parseRelative(c cursor) ([]models.Part, cursor, error) {
	if c.word(0) == lexer.WordIn {
		offsets, rest, err := parseOffsets(c.advance(1))
		if err != nil {
			return nil, rest, err
		}

		return parseChain(rest, offsets, 0, true)
	}

	offsets, rest, err := parseOffsets(c)
	if err != nil {
		return nil, rest, err
	}

	switch rest.word(0) {
	case lexer.WordAgo:
		return parseChain(rest.advance(1), negate(offsets), 0, true)
	case lexer.WordLater:
		return parseChain(rest.advance(1), offsets, 0, true)
	case lexer.WordAfter, lexer.WordFrom:
		base, after, err := parseExpression(rest.advance(1))
		if err != nil {
			return nil, after, err
		}

		return append(base, offsets...), after, nil
	case lexer.WordBefore:
		base, after, err := parseExpression(rest.advance(1))
		if err != nil {
			return nil, after, err
		}

		return append(base, negate(offsets)...), after, nil
	}

	return nil, rest, rest.fail(`"ago"`, `"after"`, `"before"`, `"from"`, `"later"`)
}

func negate(offsets []models.Part) []models.Part {
	out := make([]models.Part, len(offsets))
	for i, p := range offsets {
		o := p.(models.RelativeOffset)
		o.Quantity = -o.Quantity
		out[i] = o
	}

	return out
}

func startsRelative(c cursor) bool {
	if c.word(0) == lexer.WordIn {
		return startsQuantity(c.advance(1))
	}

	return startsQuantity(c)
}

func isKind(c cursor, n int, kind models.TokenKind) bool {
	k, ok := c.kind(n)

	return ok && k == kind
}

// startsClock reports whether c begins a number with a meridiem: "5 pm",
// "5 30 pm" or "5.30 pm".
func startsClock(c cursor) bool {
	if !isKind(c, 0, models.TokenNumber) {
		return false
	}

	switch {
	case isMeridiem(c.word(1)):
		return true
	case isKind(c, 1, models.TokenNumber) && isMeridiem(c.word(2)):
		return true
	default:
		return c.is(1, ".") && isKind(c, 2, models.TokenNumber) && isMeridiem(c.word(3))
	}
}

func isDateDelimiter(c cursor) bool {
	return c.is(1, "/") || c.is(1, ".") || c.is(1, "-")
}

func isMonth(w string) bool {
	_, ok := lexer.Months[w]

	return ok
}

func isWeekday(w string) bool {
	_, ok := lexer.Weekdays[w]

	return ok
}

func isModifier(w string) bool {
	_, ok := lexer.Modifiers[w]

	return ok
}

func isAnchor(w string) bool {
	_, ok := lexer.Anchors[w]

	return ok
}

func isUnit(w string) bool {
	_, ok := lexer.Units[w]

	return ok
}

func isMeridiem(w string) bool {
	_, ok := lexer.Meridiems[w]

	return ok
}
