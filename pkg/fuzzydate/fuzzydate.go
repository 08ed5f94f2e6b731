// Package fuzzydate converts informal date phrases such as "five days after
// this friday" or "tomorrow at noon" into zone-aware timestamps.
//
// A phrase is tokenized, parsed into an expression tree and resolved against
// an anchor instant. Every stage is pure, so a Parser may be shared between
// goroutines.
package fuzzydate

import (
	"time"

	"fuzzydate/internal/clock"
	"fuzzydate/internal/grammar"
	"fuzzydate/internal/lexer"
	"fuzzydate/internal/resolve"
	"fuzzydate/pkg/interfaces"
	"fuzzydate/pkg/models"
)

// Parser resolves phrases. The zero value is not usable; call New.
type Parser struct {
	clock interfaces.Clock
	opts  resolve.Options
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the anchor source used by Parse.
func WithClock(c interfaces.Clock) Option {
	return func(p *Parser) {
		p.clock = c
	}
}

// WithWeekStart sets the first day of the week for "this", "next" and "last"
// weekday references. The default is Monday.
func WithWeekStart(day time.Weekday) Option {
	return func(p *Parser) {
		p.opts.WeekStart = day
	}
}

// New returns a Parser reading the system clock in time.Local.
func New(opts ...Option) *Parser {
	p := &Parser{
		clock: clock.System{},
		opts:  resolve.DefaultOptions(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

var defaultParser = New()

// Parse resolves phrase against the current time in the local zone.
func Parse(phrase string) (time.Time, error) {
	return defaultParser.Parse(phrase)
}

// AwareParse resolves phrase against anchor, reading wall clocks in loc.
func AwareParse(phrase string, anchor time.Time, loc *time.Location) (time.Time, error) {
	return defaultParser.AwareParse(phrase, anchor, loc)
}

// ParseRelativeTo resolves phrase against anchor in the anchor's location.
func ParseRelativeTo(phrase string, anchor time.Time) (time.Time, error) {
	return defaultParser.ParseRelativeTo(phrase, anchor)
}

// Compile tokenizes and parses phrase without resolving it.
func Compile(phrase string) (*models.Expr, error) {
	return defaultParser.Compile(phrase)
}

// Resolve applies a compiled expression to anchor.
func Resolve(expr *models.Expr, anchor time.Time, loc *time.Location) (time.Time, error) {
	return defaultParser.Resolve(expr, anchor, loc)
}

// Explain runs phrase through every stage and records what each produced.
func Explain(phrase string, anchor time.Time, loc *time.Location) *Trace {
	return defaultParser.Explain(phrase, anchor, loc)
}

func (p *Parser) Parse(phrase string) (time.Time, error) {
	return p.AwareParse(phrase, p.clock.Now(), p.clock.Location())
}

func (p *Parser) AwareParse(phrase string, anchor time.Time, loc *time.Location) (time.Time, error) {
	expr, err := p.Compile(phrase)
	if err != nil {
		return time.Time{}, err
	}

	return p.Resolve(expr, anchor, loc)
}

func (p *Parser) ParseRelativeTo(phrase string, anchor time.Time) (time.Time, error) {
	return p.AwareParse(phrase, anchor, anchor.Location())
}

// Compile returns *models.LexError or *models.ParseError unwrapped.
func (p *Parser) Compile(phrase string) (*models.Expr, error) {
	tokens, err := lexer.Tokenize(phrase)
	if err != nil {
		return nil, err
	}

	return grammar.Parse(tokens)
}

// Resolve returns *models.RangeError unwrapped. A nil loc uses the anchor's
// location.
func (p *Parser) Resolve(expr *models.Expr, anchor time.Time, loc *time.Location) (time.Time, error) {
	return resolve.Resolve(expr, anchor, loc, p.opts)
}

// WeekStart reports the configured first day of the week.
func (p *Parser) WeekStart() time.Weekday {
	return p.opts.WeekStart
}
