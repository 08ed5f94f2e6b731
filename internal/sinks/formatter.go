package sinks

import (
	"fmt"
	"io"
	"time"

	"fuzzydate/pkg/models"
)

// formatter is an unexported interface for output format differences.
// Implementations live in this package and are created via newFormatter.
type formatter interface {
	name() string
	encode(w io.Writer, records []record) error
}

// newFormatter creates the named formatter ("text", "yaml" or "json").
func newFormatter(n string) (formatter, error) {
	switch n {
	case "text", "":
		return textFormatter{}, nil
	case "yaml":
		return yamlFormatter{}, nil
	case "json":
		return jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format '%s': supported formats are 'text', 'yaml' and 'json'", n)
	}
}

// record is one resolution with its timestamp already rendered.
type record struct {
	Phrase string `json:"phrase"          yaml:"phrase"`
	Time   string `json:"time,omitempty"  yaml:"time,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func toRecords(results []models.Resolution, layout string, loc *time.Location) []record {
	records := make([]record, len(results))

	for i, res := range results {
		records[i] = record{Phrase: res.Phrase, Error: res.Error}

		if res.OK() {
			t := res.Time
			if loc != nil {
				t = t.In(loc)
			}

			records[i].Time = t.Format(layout)
		}
	}

	return records
}
