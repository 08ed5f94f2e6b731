package models

import (
	"fmt"
	"strings"
	"time"
)

// Field is an optional integer field of a date or time literal. Fields that
// are not Valid are filled from the running timestamp during resolution.
type Field struct {
	Value int  `json:"value" yaml:"value"`
	Valid bool `json:"valid" yaml:"valid"`
}

// Set returns a valid Field holding v.
func Set(v int) Field {
	return Field{Value: v, Valid: true}
}

func (f Field) String() string {
	if !f.Valid {
		return "_"
	}

	return fmt.Sprint(f.Value)
}

// Unit is the time unit of a relative offset.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

var unitNames = [...]string{"second", "minute", "hour", "day", "week", "month", "year"}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}

	return unitNames[u]
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Modifier qualifies a weekday reference.
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierThis
	ModifierNext
	ModifierLast
)

var modifierNames = [...]string{"none", "this", "next", "last"}

func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return fmt.Sprintf("Modifier(%d)", int(m))
	}

	return modifierNames[m]
}

func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// AnchorKind names a keyword that pins a date or a time of day.
type AnchorKind int

const (
	AnchorNow AnchorKind = iota
	AnchorToday
	AnchorTomorrow
	AnchorYesterday
	AnchorNoon
	AnchorMidnight
)

var anchorNames = [...]string{"now", "today", "tomorrow", "yesterday", "noon", "midnight"}

func (a AnchorKind) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("AnchorKind(%d)", int(a))
	}

	return anchorNames[a]
}

func (a AnchorKind) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Meridiem records an am/pm suffix on a clock time.
type Meridiem int

const (
	MeridiemNone Meridiem = iota
	MeridiemAM
	MeridiemPM
)

func (m Meridiem) String() string {
	switch m {
	case MeridiemAM:
		return "am"
	case MeridiemPM:
		return "pm"
	default:
		return ""
	}
}

func (m Meridiem) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Part is one fragment of a parsed phrase. The set of implementations is
// closed: only the types in this file satisfy it.
type Part interface {
	isPart()
	String() string
}

// AbsoluteDate overwrites the date fields it specifies.
type AbsoluteDate struct {
	Year      Field `json:"year"       yaml:"year"`
	Month     Field `json:"month"      yaml:"month"`
	Day       Field `json:"day"        yaml:"day"`
	ShortYear bool  `json:"short_year" yaml:"short_year"`
}

// AbsoluteTime overwrites the time-of-day fields it specifies.
type AbsoluteTime struct {
	Hour       Field    `json:"hour"       yaml:"hour"`
	Minute     Field    `json:"minute"     yaml:"minute"`
	Second     Field    `json:"second"     yaml:"second"`
	Nanosecond Field    `json:"nanosecond" yaml:"nanosecond"`
	Meridiem   Meridiem `json:"meridiem"   yaml:"meridiem"`
}

// RelativeOffset shifts the running timestamp by Quantity units. Negative
// quantities move into the past.
type RelativeOffset struct {
	Quantity int64 `json:"quantity" yaml:"quantity"`
	Unit     Unit  `json:"unit"     yaml:"unit"`
}

// WeekdayReference moves the running date to a day of the week.
type WeekdayReference struct {
	Weekday  time.Weekday `json:"weekday"  yaml:"weekday"`
	Modifier Modifier     `json:"modifier" yaml:"modifier"`
}

// AnchorKeyword is one of now, today, tomorrow, yesterday, noon or midnight.
type AnchorKeyword struct {
	Kind AnchorKind `json:"kind" yaml:"kind"`
}

// ZoneOffset is an explicit UTC offset written in the phrase.
type ZoneOffset struct {
	Name    string `json:"name"    yaml:"name"`
	Seconds int    `json:"seconds" yaml:"seconds"`
}

func (AbsoluteDate) isPart()     {}
func (AbsoluteTime) isPart()     {}
func (RelativeOffset) isPart()   {}
func (WeekdayReference) isPart() {}
func (AnchorKeyword) isPart()    {}
func (ZoneOffset) isPart()       {}

func (d AbsoluteDate) String() string {
	year := d.Year.String()
	if d.ShortYear {
		year = "'" + year
	}

	return fmt.Sprintf("date(%s-%s-%s)", year, d.Month, d.Day)
}

func (t AbsoluteTime) String() string {
	s := fmt.Sprintf("time(%s:%s:%s", t.Hour, t.Minute, t.Second)
	if t.Nanosecond.Valid {
		s += fmt.Sprintf(".%09d", t.Nanosecond.Value)
	}

	if t.Meridiem != MeridiemNone {
		s += t.Meridiem.String()
	}

	return s + ")"
}

func (o RelativeOffset) String() string {
	return fmt.Sprintf("offset(%+d %s)", o.Quantity, o.Unit)
}

func (w WeekdayReference) String() string {
	if w.Modifier == ModifierNone {
		return fmt.Sprintf("weekday(%s)", strings.ToLower(w.Weekday.String()))
	}

	return fmt.Sprintf("weekday(%s %s)", w.Modifier, strings.ToLower(w.Weekday.String()))
}

func (a AnchorKeyword) String() string {
	return fmt.Sprintf("anchor(%s)", a.Kind)
}

func (z ZoneOffset) String() string {
	return fmt.Sprintf("zone(%s %+d)", z.Name, z.Seconds)
}

// Expr is the parsed form of a whole phrase: fragments applied left to right.
type Expr struct {
	Parts []Part
}

func (e *Expr) String() string {
	parts := make([]string, len(e.Parts))
	for i, p := range e.Parts {
		parts[i] = p.String()
	}

	return strings.Join(parts, " ")
}
