package fuzzydate

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzydate/internal/clock"
	"fuzzydate/pkg/models"
)

var anchor = time.Date(2025, time.November, 27, 8, 0, 0, 0, time.UTC)

func TestParser_ParseUsesClock(t *testing.T) {
	p := New(WithClock(clock.At(anchor)))

	got, err := p.Parse("tomorrow at noon")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 28, 12, 0, 0, 0, time.UTC), got)
}

func TestAwareParse(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)

	got, err := AwareParse("today at 9am", anchor, tokyo)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 27, 9, 0, 0, 0, tokyo), got)
}

func TestParseRelativeTo(t *testing.T) {
	got, err := ParseRelativeTo("3 weeks ago", anchor)
	require.NoError(t, err)
	assert.Equal(t, anchor.AddDate(0, 0, -21), got)
}

func TestOffsetCorrectness(t *testing.T) {
	units := map[string]time.Duration{
		"seconds": time.Second,
		"minutes": time.Minute,
		"hours":   time.Hour,
		"days":    24 * time.Hour,
		"weeks":   7 * 24 * time.Hour,
	}

	for unit, d := range units {
		for _, n := range []int{0, 1, 7, 45} {
			ago, err := ParseRelativeTo(fmt.Sprintf("%d %s ago", n, unit), anchor)
			require.NoError(t, err)
			assert.Equal(t, anchor.Add(-time.Duration(n)*d), ago)

			after, err := ParseRelativeTo(fmt.Sprintf("%d %s from now", n, unit), anchor)
			require.NoError(t, err)
			assert.Equal(t, anchor.Add(time.Duration(n)*d), after)
		}
	}
}

func TestWithWeekStart(t *testing.T) {
	monday := New()
	sunday := New(WithWeekStart(time.Sunday))

	assert.Equal(t, time.Monday, monday.WeekStart())

	a, err := monday.ParseRelativeTo("this sunday", anchor)
	require.NoError(t, err)

	b, err := sunday.ParseRelativeTo("this sunday", anchor)
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, a.Sub(b))
}

func TestCompileAndResolve(t *testing.T) {
	expr, err := Compile("next friday at 5pm")
	require.NoError(t, err)
	assert.Equal(t, "weekday(next friday) time(5:0:0.000000000pm)", expr.String())

	got, err := Resolve(expr, anchor, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 5, 17, 0, 0, 0, time.UTC), got)

	// the same tree resolves against another anchor
	got, err = Resolve(expr, anchor.AddDate(0, 0, 7), nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 12, 17, 0, 0, 0, time.UTC), got)
}

func TestErrors(t *testing.T) {
	t.Run("lex", func(t *testing.T) {
		_, err := ParseRelativeTo("today \x00", anchor)

		var lexErr *models.LexError
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, 6, lexErr.Pos)
	})

	t.Run("parse", func(t *testing.T) {
		_, err := ParseRelativeTo("tomorrow at", anchor)

		var parseErr *models.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 11, parseErr.Pos)
		assert.Equal(t, []string{"a time"}, parseErr.Expected)
		assert.Equal(t, "unexpected end of input at position 11: expected a time", err.Error())
	})

	t.Run("parse without relation", func(t *testing.T) {
		_, err := ParseRelativeTo("3 days", anchor)

		var parseErr *models.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.NotEmpty(t, parseErr.Expected)
	})

	t.Run("range", func(t *testing.T) {
		_, err := ParseRelativeTo("2023-02-30", anchor)

		var rangeErr *models.RangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, "day 30 is out of range", err.Error())
	})

	t.Run("positions point into the phrase", func(t *testing.T) {
		phrase := "next friday xyz"
		_, err := ParseRelativeTo(phrase, anchor)

		var positioned models.Positioned
		require.True(t, errors.As(err, &positioned))
		assert.Equal(t, "xyz", phrase[positioned.Position():])
	})
}

func TestExplain(t *testing.T) {
	trace := Explain("five days after this friday", anchor, nil)

	require.NoError(t, trace.Err)
	assert.Len(t, trace.Tokens, 5)
	assert.Equal(t, []string{"weekday(this friday)", "offset(+5 day)"}, trace.Parts)
	require.NotNil(t, trace.Result)
	assert.Equal(t, time.Date(2025, time.December, 3, 8, 0, 0, 0, time.UTC), *trace.Result)
	assert.Equal(t, "UTC", trace.Location)
}

func TestExplain_StopsAtFailingStage(t *testing.T) {
	tests := []struct {
		phrase string
		stage  string
		tokens int
	}{
		{"now\x01", "lex", 0},
		{"friday at", "parse", 2},
		{"13pm", "resolve", 2},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			trace := Explain(tt.phrase, anchor, nil)

			require.Error(t, trace.Err)
			assert.Equal(t, tt.stage, trace.Stage)
			assert.Equal(t, trace.Err.Error(), trace.Error)
			assert.Len(t, trace.Tokens, tt.tokens)
			assert.Nil(t, trace.Result)
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	phrases := map[string]time.Time{
		"tomorrow at noon":            time.Date(2025, time.November, 28, 12, 0, 0, 0, time.UTC),
		"five days after this friday": time.Date(2025, time.December, 3, 8, 0, 0, 0, time.UTC),
		"3 weeks ago":                 time.Date(2025, time.November, 6, 8, 0, 0, 0, time.UTC),
		"2024-03-05T10:00:00Z":        time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
	}

	p := New()

	var wg sync.WaitGroup

	for range 8 {
		for phrase, want := range phrases {
			wg.Add(1)

			go func() {
				defer wg.Done()

				got, err := p.ParseRelativeTo(phrase, anchor)
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}()
		}
	}

	wg.Wait()
}

func TestParse_SystemClock(t *testing.T) {
	before := time.Now()

	got, err := Parse("now")
	require.NoError(t, err)

	assert.False(t, got.Before(before.Truncate(time.Second)))
	assert.Equal(t, time.Local, got.Location())
}
