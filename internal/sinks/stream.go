package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"fuzzydate/pkg/models"
)

// Options controls how timestamps are rendered.
type Options struct {
	Layout   string         // Go reference layout; empty = time.RFC3339
	Location *time.Location // nil = keep each result's own location
}

// StreamSink writes resolutions to an io.Writer in one format. It implements
// the Sink interface.
type StreamSink struct {
	fmt  formatter
	w    io.Writer
	opts Options
}

// NewSink creates a StreamSink for the given format name.
func NewSink(formatName string, w io.Writer, opts Options) (*StreamSink, error) {
	f, err := newFormatter(formatName)
	if err != nil {
		return nil, err
	}

	if opts.Layout == "" {
		opts.Layout = time.RFC3339
	}

	return &StreamSink{fmt: f, w: w, opts: opts}, nil
}

// Name returns the name of the underlying formatter.
func (s *StreamSink) Name() string {
	return s.fmt.name()
}

// Write renders all results. Nothing is written once ctx is done.
func (s *StreamSink) Write(ctx context.Context, results []models.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fmt.encode(s.w, toRecords(results, s.opts.Layout, s.opts.Location)); err != nil {
		return fmt.Errorf("failed to write %s output: %w", s.fmt.name(), err)
	}

	return nil
}

type textFormatter struct{}

func (textFormatter) name() string { return "text" }

func (textFormatter) encode(w io.Writer, records []record) error {
	for _, r := range records {
		value := r.Time
		if r.Error != "" {
			value = "error: " + r.Error
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Phrase, value); err != nil {
			return err
		}
	}

	return nil
}

type yamlFormatter struct{}

func (yamlFormatter) name() string { return "yaml" }

func (yamlFormatter) encode(w io.Writer, records []record) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(records); err != nil {
		return err
	}

	return encoder.Close()
}

type jsonFormatter struct{}

func (jsonFormatter) name() string { return "json" }

func (jsonFormatter) encode(w io.Writer, records []record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(records)
}
