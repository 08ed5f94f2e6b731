// Package resolve turns an expression tree into a timestamp by applying its
// parts, left to right, to a running wall clock that starts at the anchor.
package resolve

import (
	"fmt"
	"time"

	"fuzzydate/internal/calendar"
	"fuzzydate/pkg/models"
)

const (
	minYear = 1
	maxYear = 9999

	// UTC-12:00 through UTC+14:00
	maxOffsetSeconds = 14 * 3600
)

// Options adjusts resolution policy.
type Options struct {
	// WeekStart is the first day of the week for "this", "next" and "last"
	// weekday references.
	WeekStart time.Weekday
}

// DefaultOptions starts weeks on Monday.
func DefaultOptions() Options {
	return Options{WeekStart: time.Monday}
}

// state is the running timestamp. wall holds the civil date and clock in UTC
// so calendar moves never pass through a DST gap; loc is the zone the wall
// clock is read in.
type state struct {
	wall   time.Time
	loc    *time.Location
	anchor time.Time
	opts   Options
}

// Resolve applies expr to anchor, reading wall clocks in loc. A nil loc uses
// the anchor's location.
func Resolve(expr *models.Expr, anchor time.Time, loc *time.Location, opts Options) (time.Time, error) {
	if loc == nil {
		loc = anchor.Location()
	}

	s := &state{
		wall: civil(anchor.In(loc)),
		loc:  loc,
		opts: opts,
	}
	s.anchor = s.wall

	for _, part := range expr.Parts {
		if err := s.apply(part); err != nil {
			return time.Time{}, err
		}

		if y := s.wall.Year(); y < minYear || y > maxYear {
			return time.Time{}, &models.RangeError{Field: "year", Value: int64(y)}
		}
	}

	return s.instant(), nil
}

func (s *state) apply(part models.Part) error {
	switch p := part.(type) {
	case models.AbsoluteDate:
		return s.date(p)
	case models.AbsoluteTime:
		return s.clock(p)
	case models.RelativeOffset:
		return s.offset(p)
	case models.WeekdayReference:
		s.wall = calendar.ResolveWeekday(s.wall, p.Weekday, p.Modifier, s.opts.WeekStart)
	case models.AnchorKeyword:
		s.keyword(p.Kind)
	case models.ZoneOffset:
		return s.zone(p)
	default:
		return fmt.Errorf("unsupported expression part %T", part)
	}

	return nil
}

func (s *state) date(d models.AbsoluteDate) error {
	year, month, day := s.wall.Date()

	if d.Year.Valid {
		year = d.Year.Value
		if d.ShortYear {
			year = expandYear(year, s.anchor.Year())
		}

		if year < minYear || year > maxYear {
			return &models.RangeError{Field: "year", Value: int64(year)}
		}
	}

	if d.Month.Valid {
		if d.Month.Value < 1 || d.Month.Value > 12 {
			return &models.RangeError{Field: "month", Value: int64(d.Month.Value)}
		}

		month = time.Month(d.Month.Value)
	}

	if d.Day.Valid {
		day = d.Day.Value
	}

	if !calendar.ValidDate(year, month, day) {
		return &models.RangeError{Field: "day", Value: int64(day)}
	}

	s.setDate(year, month, day)

	return nil
}

// expandYear places a two digit year in the century window that ends ten
// years after the anchor year.
func expandYear(short, anchorYear int) int {
	year := anchorYear/100*100 + short

	switch {
	case year > anchorYear+10:
		year -= 100
	case year <= anchorYear-90:
		year += 100
	}

	return year
}

func (s *state) clock(t models.AbsoluteTime) error {
	hour, minute, second := s.wall.Clock()
	nsec := 0

	if t.Hour.Valid {
		hour, minute, second = t.Hour.Value, 0, 0
	}

	if t.Meridiem != models.MeridiemNone {
		if hour < 1 || hour > 12 {
			return &models.RangeError{Field: "hour", Value: int64(hour)}
		}

		hour %= 12
		if t.Meridiem == models.MeridiemPM {
			hour += 12
		}
	}

	if t.Minute.Valid {
		minute = t.Minute.Value
	}

	if t.Second.Valid {
		second = t.Second.Value
	}

	if t.Nanosecond.Valid {
		nsec = t.Nanosecond.Value
	}

	switch {
	case hour < 0 || hour > 23:
		return &models.RangeError{Field: "hour", Value: int64(hour)}
	case minute < 0 || minute > 59:
		return &models.RangeError{Field: "minute", Value: int64(minute)}
	case second < 0 || second > 59:
		return &models.RangeError{Field: "second", Value: int64(second)}
	case nsec < 0 || nsec > 999_999_999:
		return &models.RangeError{Field: "nanosecond", Value: int64(nsec)}
	}

	s.setClock(hour, minute, second, nsec)

	return nil
}

// offset moves by fixed durations on the real instant, so "3 hours ago" across
// a DST change is three elapsed hours, and by calendar fields on the wall
// clock.
func (s *state) offset(o models.RelativeOffset) error {
	if calendar.IsFixed(o.Unit) {
		moved, err := calendar.AddUnits(s.instant(), o.Quantity, o.Unit)
		if err != nil {
			return err
		}

		s.wall = civil(moved.In(s.loc))

		return nil
	}

	moved, err := calendar.AddUnits(s.wall, o.Quantity, o.Unit)
	if err != nil {
		return err
	}

	s.wall = moved

	return nil
}

func (s *state) keyword(kind models.AnchorKind) {
	switch kind {
	case models.AnchorNow:
		s.wall = s.anchor
	case models.AnchorToday:
		s.setDate(s.anchor.Date())
	case models.AnchorTomorrow:
		s.setDate(s.anchor.AddDate(0, 0, 1).Date())
	case models.AnchorYesterday:
		s.setDate(s.anchor.AddDate(0, 0, -1).Date())
	case models.AnchorNoon:
		s.setClock(12, 0, 0, 0)
	case models.AnchorMidnight:
		s.setClock(0, 0, 0, 0)
	}
}

// zone relabels the running wall clock into an explicit zone: "10:00 +02:00"
// is ten o'clock at UTC+2, not the anchor zone's ten o'clock converted.
func (s *state) zone(z models.ZoneOffset) error {
	if z.Seconds < -maxOffsetSeconds || z.Seconds > maxOffsetSeconds {
		return &models.RangeError{Field: "offset", Value: int64(z.Seconds)}
	}

	switch {
	case z.Seconds == 0 && z.Name == "UTC":
		s.loc = time.UTC
	default:
		s.loc = time.FixedZone(z.Name, z.Seconds)
	}

	return nil
}

func (s *state) setDate(year int, month time.Month, day int) {
	hour, minute, second := s.wall.Clock()
	s.wall = time.Date(year, month, day, hour, minute, second, s.wall.Nanosecond(), time.UTC)
}

func (s *state) setClock(hour, minute, second, nsec int) {
	year, month, day := s.wall.Date()
	s.wall = time.Date(year, month, day, hour, minute, second, nsec, time.UTC)
}

// instant reads the wall clock in the running location. A wall clock inside
// a DST gap normalizes forward the way time.Date does.
func (s *state) instant() time.Time {
	year, month, day := s.wall.Date()
	hour, minute, second := s.wall.Clock()

	return time.Date(year, month, day, hour, minute, second, s.wall.Nanosecond(), s.loc)
}

func civil(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	return time.Date(year, month, day, hour, minute, second, t.Nanosecond(), time.UTC)
}
