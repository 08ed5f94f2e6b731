package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzydate/pkg/models"
)

func kinds(tokens []models.Token) []models.TokenKind {
	out := make([]models.TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}

	return out
}

func lexemes(tokens []models.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Lexeme
	}

	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		lexemes []string
		kinds   []models.TokenKind
	}{
		{
			name:    "relative phrase",
			input:   "Five days after this Friday",
			lexemes: []string{"five", "days", "after", "this", "friday"},
			kinds:   []models.TokenKind{models.TokenWord, models.TokenWord, models.TokenWord, models.TokenWord, models.TokenWord},
		},
		{
			name:    "digits split from letters",
			input:   "10am",
			lexemes: []string{"10", "am"},
			kinds:   []models.TokenKind{models.TokenNumber, models.TokenWord},
		},
		{
			name:    "ordinal",
			input:   "March 22nd",
			lexemes: []string{"march", "22nd"},
			kinds:   []models.TokenKind{models.TokenWord, models.TokenOrdinal},
		},
		{
			name:    "iso date",
			input:   "2024-03-05",
			lexemes: []string{"2024-03-05"},
			kinds:   []models.TokenKind{models.TokenISODate},
		},
		{
			name:    "iso time with meridiem",
			input:   "at 5:30PM",
			lexemes: []string{"at", "5:30pm"},
			kinds:   []models.TokenKind{models.TokenWord, models.TokenISOTime},
		},
		{
			name:    "rfc3339 splits into date and time",
			input:   "2024-03-05T10:00:00Z",
			lexemes: []string{"2024-03-05", "10:00:00z"},
			kinds:   []models.TokenKind{models.TokenISODate, models.TokenISOTime},
		},
		{
			name:    "rfc3339 with offset and fraction",
			input:   "2024-03-05T10:00:00.5-07:00",
			lexemes: []string{"2024-03-05", "10:00:00.5-07:00"},
			kinds:   []models.TokenKind{models.TokenISODate, models.TokenISOTime},
		},
		{
			name:    "slashed date",
			input:   "2/12/2022",
			lexemes: []string{"2", "/", "12", "/", "2022"},
			kinds: []models.TokenKind{
				models.TokenNumber, models.TokenPunctuation, models.TokenNumber,
				models.TokenPunctuation, models.TokenNumber,
			},
		},
		{
			name:    "hyphenated number word",
			input:   "fifty-five",
			lexemes: []string{"fifty", "-", "five"},
			kinds:   []models.TokenKind{models.TokenWord, models.TokenPunctuation, models.TokenWord},
		},
		{
			name:    "comma chain",
			input:   "1 day, 2 hours",
			lexemes: []string{"1", "day", ",", "2", "hours"},
			kinds: []models.TokenKind{
				models.TokenNumber, models.TokenWord, models.TokenPunctuation,
				models.TokenNumber, models.TokenWord,
			},
		},
		{
			name:    "opaque symbols",
			input:   "%%% xyz",
			lexemes: []string{"%%%", "xyz"},
			kinds:   []models.TokenKind{models.TokenWord, models.TokenWord},
		},
		{
			name:    "ordinal suffix needs a boundary",
			input:   "5star",
			lexemes: []string{"5", "star"},
			kinds:   []models.TokenKind{models.TokenNumber, models.TokenWord},
		},
		{
			name:    "empty",
			input:   "   ",
			lexemes: []string{},
			kinds:   []models.TokenKind{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.lexemes, lexemes(tokens))
			assert.Equal(t, tt.kinds, kinds(tokens))
		})
	}
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := Tokenize("tomorrow  at noon")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 10, tokens[1].Pos)
	assert.Equal(t, 13, tokens[2].Pos)
	assert.Equal(t, 17, tokens[2].End())
}

func TestTokenize_JoinedTimePosition(t *testing.T) {
	tokens, err := Tokenize("2024-03-05T10:00")
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 11, tokens[1].Pos)
}

func TestTokenize_LexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{name: "invalid utf8", input: "today \xff", pos: 6},
		{name: "control character", input: "now\x00", pos: 3},
		{name: "invalid utf8 inside symbols", input: "%%\xfe", pos: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)

			var lexErr *models.LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.pos, lexErr.Pos)
		})
	}
}

func TestTokenize_UnknownWordsAreNotErrors(t *testing.T) {
	tokens, err := Tokenize("Hello World")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, lexemes(tokens))
	assert.False(t, IsKeyword(tokens[0].Lexeme))
}

func TestScan_Restartable(t *testing.T) {
	seq := Scan("next friday at 5pm")

	var first, second []string

	for tok, err := range seq {
		require.NoError(t, err)

		first = append(first, tok.Lexeme)
	}

	for tok, err := range seq {
		require.NoError(t, err)

		second = append(second, tok.Lexeme)
	}

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"next", "friday", "at", "5", "pm"}, first)
}

func TestScan_StopsEarly(t *testing.T) {
	count := 0

	for range Scan("one two three four") {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}

func TestIsKeyword(t *testing.T) {
	for _, word := range []string{"friday", "sept", "hrs", "ago", "noon", "pm", "utc", "ninety", "hundred", "billion", "the"} {
		assert.True(t, IsKeyword(word), word)
	}

	for _, word := range []string{"xyz", "fortnight", "every"} {
		assert.False(t, IsKeyword(word), word)
	}
}
