// Package calendar implements unit arithmetic and weekday lookup on
// time.Time values.
package calendar

import (
	"math"
	"time"

	"fuzzydate/pkg/models"
)

// maxMonths bounds month arithmetic well past the representable year range.
const maxMonths = 12 * 20_000

var unitDurations = map[models.Unit]time.Duration{
	models.UnitSecond: time.Second,
	models.UnitMinute: time.Minute,
	models.UnitHour:   time.Hour,
	models.UnitDay:    24 * time.Hour,
	models.UnitWeek:   7 * 24 * time.Hour,
}

// IsFixed reports whether unit is a fixed duration rather than a calendar
// field.
func IsFixed(unit models.Unit) bool {
	_, ok := unitDurations[unit]

	return ok
}

// AddUnits adds q units to t. Seconds through weeks are fixed durations.
// Months and years move the calendar field, keep the wall clock and clamp the
// day to the end of the target month.
func AddUnits(t time.Time, q int64, unit models.Unit) (time.Time, error) {
	if d, ok := unitDurations[unit]; ok {
		if q > math.MaxInt64/int64(d) || q < math.MinInt64/int64(d) {
			return time.Time{}, &models.RangeError{Field: unit.String() + "s", Value: q}
		}

		return t.Add(time.Duration(q) * d), nil
	}

	months := q
	switch unit {
	case models.UnitMonth:
	case models.UnitYear:
		if q > maxMonths/12 || q < -maxMonths/12 {
			return time.Time{}, &models.RangeError{Field: "years", Value: q}
		}

		months = q * 12
	default:
		return time.Time{}, &models.RangeError{Field: "unit", Value: int64(unit)}
	}

	if months > maxMonths || months < -maxMonths {
		return time.Time{}, &models.RangeError{Field: "months", Value: q}
	}

	return AddMonths(t, int(months)), nil
}

// AddMonths moves t by n calendar months, clamping the day so Jan 31 plus one
// month is the last day of February.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	total := year*12 + int(month) - 1 + n
	year, month = floorDiv(total, 12), time.Month(floorMod(total, 12)+1)
	day = min(day, DaysIn(year, month))

	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// ResolveWeekday moves date to a weekday. Weeks begin on weekStart.
//
//	ModifierNone  next occurrence on or after date
//	ModifierThis  the weekday inside date's week, which may be in the past
//	ModifierNext  the weekday inside the following week
//	ModifierLast  the weekday inside the preceding week
//
// The wall clock of date is kept.
func ResolveWeekday(date time.Time, target time.Weekday, modifier models.Modifier, weekStart time.Weekday) time.Time {
	if modifier == models.ModifierNone {
		return date.AddDate(0, 0, floorMod(int(target)-int(date.Weekday()), 7))
	}

	intoWeek := floorMod(int(date.Weekday())-int(weekStart), 7)
	delta := floorMod(int(target)-int(weekStart), 7) - intoWeek

	switch modifier {
	case models.ModifierNext:
		delta += 7
	case models.ModifierLast:
		delta -= 7
	}

	return date.AddDate(0, 0, delta)
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidDate reports whether year-month-day names a real calendar day.
func ValidDate(year int, month time.Month, day int) bool {
	return month >= time.January && month <= time.December && day >= 1 && day <= DaysIn(year, month)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
