// Package clock provides the anchor sources used when a phrase is parsed
// without an explicit anchor.
package clock

import (
	"time"
)

// System reads the wall clock in a zone. The zero value uses time.Local.
type System struct {
	Zone *time.Location
}

func (s System) Now() time.Time {
	return time.Now().In(s.Location())
}

func (s System) Location() *time.Location {
	if s.Zone == nil {
		return time.Local
	}

	return s.Zone
}

// Fixed always returns the same instant. It is used for --relative-to and in
// tests.
type Fixed struct {
	At   time.Time
	Zone *time.Location
}

// At returns a Fixed clock at t in t's own location.
func At(t time.Time) Fixed {
	return Fixed{At: t, Zone: t.Location()}
}

func (f Fixed) Now() time.Time {
	return f.At.In(f.Location())
}

func (f Fixed) Location() *time.Location {
	if f.Zone == nil {
		return f.At.Location()
	}

	return f.Zone
}
