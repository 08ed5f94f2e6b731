package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzydate/pkg/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func TestAddUnits(t *testing.T) {
	base := date(2023, time.January, 31)

	tests := []struct {
		name string
		q    int64
		unit models.Unit
		want time.Time
	}{
		{"seconds", 90, models.UnitSecond, base.Add(90 * time.Second)},
		{"minutes back", -45, models.UnitMinute, base.Add(-45 * time.Minute)},
		{"hours", 36, models.UnitHour, date(2023, time.February, 1).Add(12 * time.Hour)},
		{"days", 1, models.UnitDay, date(2023, time.February, 1)},
		{"weeks back", -2, models.UnitWeek, date(2023, time.January, 17)},
		{"month clamps to february", 1, models.UnitMonth, date(2023, time.February, 28)},
		{"month clamps in leap year", 13, models.UnitMonth, date(2024, time.February, 29)},
		{"months back across a year", -2, models.UnitMonth, date(2022, time.November, 30)},
		{"years", 5, models.UnitYear, date(2028, time.January, 31)},
		{"zero", 0, models.UnitMonth, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddUnits(base, tt.q, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddUnits_LeapDayPlusYear(t *testing.T) {
	got, err := AddUnits(date(2024, time.February, 29), 1, models.UnitYear)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 28), got)
}

func TestAddUnits_OrderMatters(t *testing.T) {
	base := date(2023, time.January, 30)

	dayFirst, err := AddUnits(base, 1, models.UnitDay)
	require.NoError(t, err)
	dayFirst, err = AddUnits(dayFirst, 1, models.UnitMonth)
	require.NoError(t, err)

	monthFirst, err := AddUnits(base, 1, models.UnitMonth)
	require.NoError(t, err)
	monthFirst, err = AddUnits(monthFirst, 1, models.UnitDay)
	require.NoError(t, err)

	assert.Equal(t, date(2023, time.February, 28), dayFirst)
	assert.Equal(t, date(2023, time.March, 1), monthFirst)
}

func TestAddUnits_Overflow(t *testing.T) {
	tests := []struct {
		name string
		q    int64
		unit models.Unit
	}{
		{"hours", math.MaxInt64 / 1000, models.UnitHour},
		{"weeks back", math.MinInt64 / 2, models.UnitWeek},
		{"months", math.MaxInt64, models.UnitMonth},
		{"years", 1_000_000, models.UnitYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddUnits(date(2023, time.January, 1), tt.q, tt.unit)

			var rangeErr *models.RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.q, rangeErr.Value)
		})
	}
}

func TestResolveWeekday(t *testing.T) {
	// 2025-11-26 is a Wednesday
	wed := date(2025, time.November, 26)

	tests := []struct {
		name      string
		target    time.Weekday
		modifier  models.Modifier
		weekStart time.Weekday
		want      time.Time
	}{
		{"bare later in week", time.Friday, models.ModifierNone, time.Monday, date(2025, time.November, 28)},
		{"bare same day", time.Wednesday, models.ModifierNone, time.Monday, wed},
		{"bare earlier weekday wraps", time.Monday, models.ModifierNone, time.Monday, date(2025, time.December, 1)},
		{"this later in week", time.Friday, models.ModifierThis, time.Monday, date(2025, time.November, 28)},
		{"this earlier in week is past", time.Monday, models.ModifierThis, time.Monday, date(2025, time.November, 24)},
		{"this sunday ends monday week", time.Sunday, models.ModifierThis, time.Monday, date(2025, time.November, 30)},
		{"this sunday starts sunday week", time.Sunday, models.ModifierThis, time.Sunday, date(2025, time.November, 23)},
		{"next", time.Friday, models.ModifierNext, time.Monday, date(2025, time.December, 5)},
		{"next monday", time.Monday, models.ModifierNext, time.Monday, date(2025, time.December, 1)},
		{"last", time.Friday, models.ModifierLast, time.Monday, date(2025, time.November, 21)},
		{"last sunday", time.Sunday, models.ModifierLast, time.Monday, date(2025, time.November, 23)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWeekday(wed, tt.target, tt.modifier, tt.weekStart))
		})
	}
}

func TestResolveWeekday_EveryAnchorDay(t *testing.T) {
	monday := date(2025, time.November, 24)

	for i := range 7 {
		anchor := monday.AddDate(0, 0, i)

		for target := time.Sunday; target <= time.Saturday; target++ {
			this := ResolveWeekday(anchor, target, models.ModifierThis, time.Monday)
			next := ResolveWeekday(anchor, target, models.ModifierNext, time.Monday)
			last := ResolveWeekday(anchor, target, models.ModifierLast, time.Monday)
			bare := ResolveWeekday(anchor, target, models.ModifierNone, time.Monday)

			assert.Equal(t, target, this.Weekday())
			assert.Equal(t, this.AddDate(0, 0, 7), next)
			assert.Equal(t, this.AddDate(0, 0, -7), last)

			// this stays inside the Monday week
			assert.False(t, this.Before(monday))
			assert.True(t, this.Before(monday.AddDate(0, 0, 7)))

			assert.Equal(t, target, bare.Weekday())
			assert.False(t, bare.Before(anchor))
			assert.True(t, bare.Before(anchor.AddDate(0, 0, 7)))
		}
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2023, time.January))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(1900, time.February))
	assert.Equal(t, 29, DaysIn(2000, time.February))
	assert.Equal(t, 30, DaysIn(2023, time.April))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(2024, time.February, 29))
	assert.False(t, ValidDate(2023, time.February, 29))
	assert.False(t, ValidDate(2023, time.February, 30))
	assert.False(t, ValidDate(2023, 13, 1))
	assert.False(t, ValidDate(2023, time.March, 0))
}
