package main

import (
	"fmt"
	"strings"
	"time"

	"fuzzydate/pkg/fuzzydate"

	"github.com/tj/go-naturaldate"
)

// isoFormats are tried, in order, before the value is treated as a phrase.
var isoFormats = []string{
	time.RFC3339Nano,      // ISO 8601 with timezone and fraction
	"2006-01-02T15:04:05", // ISO 8601 datetime without timezone
	"2006-01-02T15:04",
	"2006-01-02", // ISO 8601 date only
}

// parseAnchor reads the --relative-to value. Absolute ISO 8601 forms take
// precedence so an anchor never depends on the current time; anything else
// is resolved as a phrase relative to now.
func parseAnchor(value string, now time.Time, loc *time.Location, firstDay time.Weekday) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty anchor")
	}

	for _, layout := range isoFormats {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return fuzzydate.New(fuzzydate.WithWeekStart(firstDay)).AwareParse(value, now, loc)
}

// parseNaturalDate resolves phrase with go-naturaldate. Returns an error if
// the input appears to be invalid or unparseable.
func parseNaturalDate(phrase string, now time.Time) (time.Time, error) {
	t, err := naturaldate.Parse(phrase, now, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("go-naturaldate: %w", err)
	}

	// naturaldate returns the reference time for input it does not understand
	if !t.Equal(now) {
		return t, nil
	}

	lowerInput := strings.ToLower(strings.TrimSpace(phrase))
	for _, ref := range []string{"now", "right now", "today"} {
		if lowerInput == ref {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("go-naturaldate: unable to parse %q", phrase)
}
