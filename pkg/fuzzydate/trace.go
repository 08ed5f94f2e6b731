package fuzzydate

import (
	"time"

	"fuzzydate/internal/grammar"
	"fuzzydate/internal/lexer"
	"fuzzydate/pkg/models"
)

// Trace records each stage of one phrase for debugging. Stages after the
// first failure are left empty.
type Trace struct {
	Phrase   string         `json:"phrase"           yaml:"phrase"`
	Anchor   time.Time      `json:"anchor"           yaml:"anchor"`
	Location string         `json:"location"         yaml:"location"`
	Tokens   []models.Token `json:"tokens"           yaml:"tokens"`
	Parts    []string       `json:"parts,omitempty"  yaml:"parts,omitempty"`
	Result   *time.Time     `json:"result,omitempty" yaml:"result,omitempty"`
	Error    string         `json:"error,omitempty"  yaml:"error,omitempty"`

	// Stage names the step that failed: "lex", "parse" or "resolve".
	Stage string `json:"stage,omitempty" yaml:"stage,omitempty"`

	Err error `json:"-" yaml:"-"`
}

func (p *Parser) Explain(phrase string, anchor time.Time, loc *time.Location) *Trace {
	if loc == nil {
		loc = anchor.Location()
	}

	trace := &Trace{Phrase: phrase, Anchor: anchor, Location: loc.String()}

	tokens, err := lexer.Tokenize(phrase)
	if err != nil {
		return trace.fail("lex", err)
	}

	trace.Tokens = tokens

	expr, err := grammar.Parse(tokens)
	if err != nil {
		return trace.fail("parse", err)
	}

	for _, part := range expr.Parts {
		trace.Parts = append(trace.Parts, part.String())
	}

	result, err := p.Resolve(expr, anchor, loc)
	if err != nil {
		return trace.fail("resolve", err)
	}

	trace.Result = &result

	return trace
}

func (t *Trace) fail(stage string, err error) *Trace {
	t.Stage = stage
	t.Err = err
	t.Error = err.Error()

	return t
}
