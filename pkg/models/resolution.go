package models

import "time"

// Resolution is the outcome of resolving one phrase in a batch. Exactly one
// of Time and Error is meaningful.
type Resolution struct {
	Index  int       `json:"index"           yaml:"index"`
	Phrase string    `json:"phrase"          yaml:"phrase"`
	Time   time.Time `json:"time,omitzero"   yaml:"time,omitempty"`
	Error  string    `json:"error,omitempty" yaml:"error,omitempty"`

	// Cached reports whether the parsed expression came from the cache.
	Cached bool `json:"cached" yaml:"cached"`
}

// OK reports whether the phrase resolved.
func (r Resolution) OK() bool {
	return r.Error == ""
}
