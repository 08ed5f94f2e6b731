package grammar

import (
	"math"
	"strconv"

	"fuzzydate/internal/lexer"
	"fuzzydate/pkg/models"
)

// wordClass is the category of the previous word while composing a spelled
// out quantity.
type wordClass uint8

const (
	classNone wordClass = iota
	classOnes
	classTeens
	classTens
	classScale
	classAnd
)

// startsQuantity reports whether a quantity begins at c: a NUMBER, a number
// word, or an article before a unit or scale ("an hour", "a hundred").
func startsQuantity(c cursor) bool {
	if isKind(c, 0, models.TokenNumber) {
		return true
	}

	w := c.word(0)
	if w == lexer.WordA || w == lexer.WordAn {
		_, scale := lexer.Scales[c.word(1)]

		return scale || isUnit(c.word(1))
	}

	return lexer.IsNumberWord(w)
}

// parseOffsets := offset { ("and" | "," ["and"]) offset }
func parseOffsets(c cursor) ([]models.Part, cursor, error) {
	var parts []models.Part

	for {
		offset, rest, err := parseOffset(c)
		if err != nil {
			return nil, rest, err
		}

		parts = append(parts, offset)
		c = rest

		next, ok := offsetSeparator(c)
		if !ok {
			return parts, c, nil
		}

		c = next
	}
}

// offsetSeparator consumes "and", "," or ", and" when another offset follows.
func offsetSeparator(c cursor) (cursor, bool) {
	next := c

	switch {
	case c.word(0) == lexer.WordAnd:
		next = c.advance(1)
	case c.is(0, ","):
		next = c.advance(1)
		if next.word(0) == lexer.WordAnd {
			next = next.advance(1)
		}
	default:
		return c, false
	}

	if !startsQuantity(next) {
		return c, false
	}

	return next, true
}

// parseOffset := quantity unit
func parseOffset(c cursor) (models.RelativeOffset, cursor, error) {
	quantity, rest, err := parseQuantity(c)
	if err != nil {
		return models.RelativeOffset{}, rest, err
	}

	unit, ok := lexer.Units[rest.word(0)]
	if !ok {
		return models.RelativeOffset{}, rest, rest.fail("a unit")
	}

	return models.RelativeOffset{Quantity: quantity, Unit: unit}, rest.advance(1), nil
}

// parseQuantity reads a NUMBER, an article, or a run of number words such as
// "two thousand three hundred and five". Digits may be scaled by the words
// after them ("2 thousand").
func parseQuantity(c cursor) (int64, cursor, error) {
	var total, current, lastScale int64

	last := classNone

	if isKind(c, 0, models.TokenNumber) {
		tok, _ := c.peek()

		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return 0, c, c.fail("a smaller quantity")
		}

		c = c.advance(1)
		if _, ok := lexer.Scales[c.word(0)]; !ok {
			return v, c, nil
		}

		current, last = v, classOnes
	} else if w := c.word(0); w == lexer.WordA || w == lexer.WordAn {
		current, last = 1, classOnes
		c = c.advance(1)

		if _, ok := lexer.Scales[c.word(0)]; !ok {
			return 1, c, nil
		}
	}

	for {
		w := c.word(0)

		if v, ok := lexer.Ones[w]; ok && (last == classNone || last == classTens || last == classScale || last == classAnd) {
			current += v
			last = classOnes
			c = c.advance(1)

			continue
		}

		if v, ok := lexer.Teens[w]; ok && (last == classNone || last == classScale || last == classAnd) {
			current += v
			last = classTeens
			c = c.advance(1)

			continue
		}

		if v, ok := lexer.Tens[w]; ok && (last == classNone || last == classScale || last == classAnd) {
			current += v
			last = classTens
			c = c.advance(1)

			// fifty-five
			if c.is(0, "-") {
				if ones, ok := lexer.Ones[c.word(1)]; ok {
					current += ones
					last = classOnes
					c = c.advance(2)
				}
			}

			continue
		}

		// "one hundred thousand" scales a hundred again
		if scale, ok := lexer.Scales[w]; ok && (last != classScale || lastScale == 100 && scale > 100) && last != classAnd {
			if last == classNone {
				current = 1
			}

			if current > math.MaxInt64/scale {
				return 0, c, c.fail("a smaller quantity")
			}

			if scale == 100 {
				current *= scale
			} else {
				if total > math.MaxInt64-current*scale {
					return 0, c, c.fail("a smaller quantity")
				}

				total += current * scale
				current = 0
			}

			last, lastScale = classScale, scale
			c = c.advance(1)

			continue
		}

		// "and" only joins a scale to the words after it
		if w == lexer.WordAnd && last == classScale && startsNumberWord(c.advance(1)) {
			last = classAnd
			c = c.advance(1)

			continue
		}

		break
	}

	if last == classNone {
		return 0, c, c.fail("a quantity")
	}

	if total > math.MaxInt64-current {
		return 0, c, c.fail("a smaller quantity")
	}

	return total + current, c, nil
}

func startsNumberWord(c cursor) bool {
	w := c.word(0)
	_, ones := lexer.Ones[w]
	_, teens := lexer.Teens[w]
	_, tens := lexer.Tens[w]

	return ones || teens || tens
}
