package lexer

import (
	"time"

	"fuzzydate/pkg/models"
)

// The keyword vocabulary is fixed. The tokenizer does not reject words outside
// it; the parser consults these tables to classify WORD tokens.

var Weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var Months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var Units = map[string]models.Unit{
	"second": models.UnitSecond, "seconds": models.UnitSecond, "sec": models.UnitSecond, "secs": models.UnitSecond,
	"minute": models.UnitMinute, "minutes": models.UnitMinute, "min": models.UnitMinute, "mins": models.UnitMinute,
	"hour": models.UnitHour, "hours": models.UnitHour, "hr": models.UnitHour, "hrs": models.UnitHour,
	"day": models.UnitDay, "days": models.UnitDay,
	"week": models.UnitWeek, "weeks": models.UnitWeek, "wk": models.UnitWeek, "wks": models.UnitWeek,
	"month": models.UnitMonth, "months": models.UnitMonth,
	"year": models.UnitYear, "years": models.UnitYear, "yr": models.UnitYear, "yrs": models.UnitYear,
}

var Modifiers = map[string]models.Modifier{
	"this": models.ModifierThis,
	"next": models.ModifierNext,
	"last": models.ModifierLast,
}

var Anchors = map[string]models.AnchorKind{
	"now":       models.AnchorNow,
	"today":     models.AnchorToday,
	"tomorrow":  models.AnchorTomorrow,
	"yesterday": models.AnchorYesterday,
	"noon":      models.AnchorNoon,
	"midnight":  models.AnchorMidnight,
}

var Meridiems = map[string]models.Meridiem{
	"am": models.MeridiemAM,
	"pm": models.MeridiemPM,
}

// Zones maps zone words to their offset from UTC in seconds.
var Zones = map[string]int{
	"utc": 0,
	"gmt": 0,
	"z":   0,
}

// Ones, Teens and Tens are the spelled-out number words that make up a
// quantity; Scales multiply everything before them.
var Ones = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
}

var Teens = map[string]int64{
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var Tens = map[string]int64{
	"twenty": 20, "thirty": 30, "forty": 40, "fourty": 40,
	"fifty": 50, "sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var Scales = map[string]int64{
	"hundred":  100,
	"thousand": 1_000,
	"million":  1_000_000,
	"billion":  1_000_000_000,
}

// Relation and filler words.
const (
	WordAgo    = "ago"
	WordAfter  = "after"
	WordBefore = "before"
	WordFrom   = "from"
	WordIn     = "in"
	WordLater  = "later"
	WordAt     = "at"
	WordOn     = "on"
	WordAnd    = "and"
	WordOf     = "of"
	WordThe    = "the"
	WordA      = "a"
	WordAn     = "an"
)

var relationWords = map[string]bool{
	WordAgo: true, WordAfter: true, WordBefore: true, WordFrom: true, WordIn: true,
	WordLater: true, WordAt: true, WordOn: true, WordAnd: true, WordOf: true,
	WordThe: true, WordA: true, WordAn: true,
}

// IsKeyword reports whether word belongs to the fixed vocabulary.
func IsKeyword(word string) bool {
	if relationWords[word] {
		return true
	}

	if _, ok := Weekdays[word]; ok {
		return true
	}

	if _, ok := Months[word]; ok {
		return true
	}

	if _, ok := Units[word]; ok {
		return true
	}

	if _, ok := Modifiers[word]; ok {
		return true
	}

	if _, ok := Anchors[word]; ok {
		return true
	}

	if _, ok := Meridiems[word]; ok {
		return true
	}

	if _, ok := Zones[word]; ok {
		return true
	}

	return IsNumberWord(word)
}

// IsNumberWord reports whether word is a spelled-out number or scale.
func IsNumberWord(word string) bool {
	if _, ok := Ones[word]; ok {
		return true
	}

	if _, ok := Teens[word]; ok {
		return true
	}

	if _, ok := Tens[word]; ok {
		return true
	}

	_, ok := Scales[word]

	return ok
}
