package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"fuzzydate/internal/lexer"
	"fuzzydate/pkg/models"
)

// hour, minute, second, fraction, meridiem, zone
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?(am|pm)?(z|[+-]\d{2}:?\d{2})?$`)

// parseISODate := ISO_DATE
func parseISODate(c cursor) ([]models.Part, slot, cursor, error) {
	tok, _ := c.peek()

	// the lexer guarantees YYYY-MM-DD
	year, _ := strconv.Atoi(tok.Lexeme[0:4])
	month, _ := strconv.Atoi(tok.Lexeme[5:7])
	day, _ := strconv.Atoi(tok.Lexeme[8:10])

	date := models.AbsoluteDate{Year: models.Set(year), Month: models.Set(month), Day: models.Set(day)}

	return []models.Part{date}, slotDate, c.advance(1), nil
}

// parseISOTime := ISO_TIME [am|pm] [zone]
func parseISOTime(c cursor) ([]models.Part, slot, cursor, error) {
	tok, _ := c.peek()

	m := clockPattern.FindStringSubmatch(tok.Lexeme)
	if m == nil {
		return nil, 0, c, c.fail("a time of day")
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	t := models.AbsoluteTime{
		Hour:       models.Set(hour),
		Minute:     models.Set(minute),
		Second:     models.Set(0),
		Nanosecond: models.Set(0),
		Meridiem:   lexer.Meridiems[m[5]],
	}

	if m[3] != "" {
		second, _ := strconv.Atoi(m[3])
		t.Second = models.Set(second)
	}

	if m[4] != "" {
		ns, _ := strconv.Atoi((m[4] + "000000000")[:9])
		t.Nanosecond = models.Set(ns)
	}

	rest := c.advance(1)

	if t.Meridiem == models.MeridiemNone {
		if mer, ok := lexer.Meridiems[rest.word(0)]; ok {
			t.Meridiem = mer
			rest = rest.advance(1)
		}
	}

	parts := []models.Part{t}

	if m[6] != "" {
		return append(parts, offsetZone(m[6])), slotTime, rest, nil
	}

	parts, rest = optionalZone(parts, rest)

	return parts, slotTime, rest, nil
}

// parseClockTime := NUMBER [[NUMBER] (am|pm)] [zone]
//
// Without a meridiem this only matches where a bare hour is allowed.
func parseClockTime(c cursor) ([]models.Part, slot, cursor, error) {
	hour, err := number(c, 0)
	if err != nil {
		return nil, 0, c, err
	}

	t := models.AbsoluteTime{
		Hour:       models.Set(hour),
		Minute:     models.Set(0),
		Second:     models.Set(0),
		Nanosecond: models.Set(0),
	}

	rest := c.advance(1)

	// 5 30 pm
	if isKind(rest, 0, models.TokenNumber) && isMeridiem(rest.word(1)) {
		minute, err := number(rest, 0)
		if err != nil {
			return nil, 0, rest, err
		}

		t.Minute = models.Set(minute)
		rest = rest.advance(1)
	}

	if mer, ok := lexer.Meridiems[rest.word(0)]; ok {
		t.Meridiem = mer
		rest = rest.advance(1)
	}

	parts, rest := optionalZone([]models.Part{t}, rest)

	return parts, slotTime, rest, nil
}

// parseDottedClock := NUMBER "." NUMBER (am|pm) [zone]
func parseDottedClock(c cursor) ([]models.Part, slot, cursor, error) {
	hour, err := number(c, 0)
	if err != nil {
		return nil, 0, c, err
	}

	minute, err := number(c, 2)
	if err != nil {
		return nil, 0, c, err
	}

	t := models.AbsoluteTime{
		Hour:       models.Set(hour),
		Minute:     models.Set(minute),
		Second:     models.Set(0),
		Nanosecond: models.Set(0),
		Meridiem:   lexer.Meridiems[c.word(3)],
	}

	parts, rest := optionalZone([]models.Part{t}, c.advance(4))

	return parts, slotTime, rest, nil
}

// parseNumericDate := NUMBER sep NUMBER [sep NUMBER]
//
// "/" and "-" dates are month first; "." dates are day first.
func parseNumericDate(c cursor) ([]models.Part, slot, cursor, error) {
	first, err := number(c, 0)
	if err != nil {
		return nil, 0, c, err
	}

	second, err := number(c, 2)
	if err != nil {
		return nil, 0, c, err
	}

	sep, _ := c.peekAt(1)

	var date models.AbsoluteDate
	if sep.Lexeme == "." {
		date.Day, date.Month = models.Set(first), models.Set(second)
	} else {
		date.Month, date.Day = models.Set(first), models.Set(second)
	}

	rest := c.advance(3)
	if rest.is(0, sep.Lexeme) {
		rest = rest.advance(1)
		if !isKind(rest, 0, models.TokenNumber) {
			return nil, 0, rest, rest.fail("a year")
		}

		year, err := number(rest, 0)
		if err != nil {
			return nil, 0, rest, err
		}

		tok, _ := rest.peek()
		date.Year = models.Set(year)
		date.ShortYear = len(tok.Lexeme) <= 2
		rest = rest.advance(1)
	}

	return []models.Part{date}, slotDate, rest, nil
}

// parseMonthDate := month (NUMBER | ORDINAL) [[","] YEAR]
func parseMonthDate(c cursor) ([]models.Part, slot, cursor, error) {
	day, err := dayNumber(c, 1)
	if err != nil {
		return nil, 0, c, err
	}

	date := models.AbsoluteDate{
		Month: models.Set(int(lexer.Months[c.word(0)])),
		Day:   models.Set(day),
	}

	var rest cursor

	date.Year, date.ShortYear, rest = optionalYear(c.advance(2))

	return []models.Part{date}, slotDate, rest, nil
}

// parseOrdinalDate := ["the"] ORDINAL [["of"] month [[","] YEAR]]
func parseOrdinalDate(c cursor) ([]models.Part, slot, cursor, error) {
	if c.word(0) == lexer.WordThe {
		c = c.advance(1)
	}

	day, err := dayNumber(c, 0)
	if err != nil {
		return nil, 0, c, err
	}

	date := models.AbsoluteDate{Day: models.Set(day)}
	rest := c.advance(1)

	if rest.word(0) == lexer.WordOf {
		rest = rest.advance(1)
		if !isMonth(rest.word(0)) {
			return nil, 0, rest, rest.fail("a month")
		}
	}

	if month, ok := lexer.Months[rest.word(0)]; ok {
		date.Month = models.Set(int(month))
		date.Year, date.ShortYear, rest = optionalYear(rest.advance(1))
	}

	return []models.Part{date}, slotDate, rest, nil
}

// parseDayMonthDate := NUMBER month [[","] YEAR]
func parseDayMonthDate(c cursor) ([]models.Part, slot, cursor, error) {
	day, err := number(c, 0)
	if err != nil {
		return nil, 0, c, err
	}

	date := models.AbsoluteDate{
		Month: models.Set(int(lexer.Months[c.word(1)])),
		Day:   models.Set(day),
	}

	var rest cursor

	date.Year, date.ShortYear, rest = optionalYear(c.advance(2))

	return []models.Part{date}, slotDate, rest, nil
}

// parseWeekday := [this|next|last] weekday
func parseWeekday(c cursor) ([]models.Part, slot, cursor, error) {
	ref := models.WeekdayReference{Modifier: models.ModifierNone}

	if mod, ok := lexer.Modifiers[c.word(0)]; ok {
		ref.Modifier = mod
		c = c.advance(1)
	}

	ref.Weekday = lexer.Weekdays[c.word(0)]

	return []models.Part{ref}, slotDate, c.advance(1), nil
}

// parseAnchor := now | today | tomorrow | yesterday | (noon | midnight) [zone]
func parseAnchor(c cursor) ([]models.Part, slot, cursor, error) {
	kind := lexer.Anchors[c.word(0)]
	parts := []models.Part{models.AnchorKeyword{Kind: kind}}
	rest := c.advance(1)

	switch kind {
	case models.AnchorNow:
		return parts, slotBoth, rest, nil
	case models.AnchorNoon, models.AnchorMidnight:
		parts, rest = optionalZone(parts, rest)

		return parts, slotTime, rest, nil
	default:
		return parts, slotDate, rest, nil
	}
}

// parseRelativeUnit := (next | last) unit
func parseRelativeUnit(c cursor) ([]models.Part, slot, cursor, error) {
	var quantity int64

	switch lexer.Modifiers[c.word(0)] {
	case models.ModifierNext:
		quantity = 1
	case models.ModifierLast:
		quantity = -1
	default:
		// "this week" names no single day
		unit := c.advance(1)

		return nil, 0, unit, unit.fail("a weekday")
	}

	offset := models.RelativeOffset{Quantity: quantity, Unit: lexer.Units[c.word(1)]}

	return []models.Part{offset}, slotDate, c.advance(2), nil
}

// optionalYear reads the year after a month and day, optionally after a
// comma, and reports whether it is a short year. A short number that starts a
// clock time ("10 pm", "10 30 pm") is left for the time.
func optionalYear(c cursor) (models.Field, bool, cursor) {
	n := 0
	if c.is(0, ",") {
		n = 1
	}

	tok, ok := c.peekAt(n)
	if !ok || tok.Kind != models.TokenNumber || len(tok.Lexeme) > 4 {
		return models.Field{}, false, c
	}

	short := len(tok.Lexeme) <= 2
	if short && startsClock(c.advance(n)) {
		return models.Field{}, false, c
	}

	year, _ := number(c, n)

	return models.Set(year), short, c.advance(n + 1)
}

// optionalZone appends a zone word (utc, gmt, z) following a time.
func optionalZone(parts []models.Part, c cursor) ([]models.Part, cursor) {
	w := c.word(0)

	seconds, ok := lexer.Zones[w]
	if !ok {
		return parts, c
	}

	name := strings.ToUpper(w)
	if name == "Z" {
		name = "UTC"
	}

	return append(parts, models.ZoneOffset{Name: name, Seconds: seconds}), c.advance(1)
}

// offsetZone converts "z", "+02:00" or "-0700" to a ZoneOffset.
func offsetZone(s string) models.ZoneOffset {
	if s == "z" {
		return models.ZoneOffset{Name: "UTC"}
	}

	digits := strings.ReplaceAll(s[1:], ":", "")
	hours, _ := strconv.Atoi(digits[:2])
	minutes, _ := strconv.Atoi(digits[2:])

	seconds := hours*3600 + minutes*60
	if s[0] == '-' {
		seconds = -seconds
	}

	return models.ZoneOffset{Seconds: seconds}
}

// number reads the NUMBER token n ahead of c.
func number(c cursor, n int) (int, error) {
	tok, _ := c.peekAt(n)

	v, err := strconv.Atoi(tok.Lexeme)
	if err != nil || len(tok.Lexeme) > 9 {
		return 0, c.advance(n).fail("a smaller number")
	}

	return v, nil
}

// dayNumber reads a NUMBER or ORDINAL day n ahead of c.
func dayNumber(c cursor, n int) (int, error) {
	tok, _ := c.peekAt(n)
	if tok.Kind == models.TokenOrdinal {
		tok.Lexeme = tok.Lexeme[:len(tok.Lexeme)-2]
	}

	v, err := strconv.Atoi(tok.Lexeme)
	if err != nil || len(tok.Lexeme) > 9 {
		return 0, c.advance(n).fail("a smaller number")
	}

	return v, nil
}
