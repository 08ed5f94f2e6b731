package main

import (
	"fmt"
	"log/slog"
	"time"

	"fuzzydate/internal/clock"
	"fuzzydate/internal/config"
	"fuzzydate/pkg/fuzzydate"
	"fuzzydate/pkg/models"
)

// settings is the config file merged with command line flags.
type settings struct {
	cfg    *models.Config
	parser *fuzzydate.Parser
	anchor time.Time
	inLoc  *time.Location
	outLoc *time.Location // nil = keep each result's own zone
	pinned bool           // anchor came from --relative-to
}

// loadSettings loads the config file (or defaults), applies flag overrides,
// validates the result and builds a parser anchored at --relative-to or now.
func loadSettings() (*settings, error) {
	cfg, err := config.LoadConfigOrDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyFlagOverrides(cfg)

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// validated above
	inLoc, _ := config.LoadLocation(cfg.InputTimezone)
	firstDay, _ := config.ParseWeekday(cfg.WeekStart)

	var outLoc *time.Location
	if cfg.OutputTimezone != "" {
		outLoc, _ = config.LoadLocation(cfg.OutputTimezone)
	}

	anchor := clock.System{Zone: inLoc}.Now()

	if relativeTo != "" {
		anchor, err = parseAnchor(relativeTo, anchor, inLoc, firstDay)
		if err != nil {
			return nil, fmt.Errorf("invalid --relative-to: %w", err)
		}
	}

	slog.Debug("settings loaded",
		"anchor", anchor.Format(time.RFC3339Nano),
		"input_timezone", inLoc.String(),
		"week_start", firstDay.String(),
		"format", cfg.Format)

	parser := fuzzydate.New(
		fuzzydate.WithClock(clock.Fixed{At: anchor, Zone: inLoc}),
		fuzzydate.WithWeekStart(firstDay),
	)

	return &settings{
		cfg:    cfg,
		parser: parser,
		anchor: anchor,
		inLoc:  inLoc,
		outLoc: outLoc,
		pinned: relativeTo != "",
	}, nil
}

// sessionParser returns the parser for a long-running session. Unless the
// anchor was pinned with --relative-to, each phrase is anchored at the
// moment it is resolved.
func (s *settings) sessionParser() *fuzzydate.Parser {
	if s.pinned {
		return s.parser
	}

	return fuzzydate.New(
		fuzzydate.WithClock(clock.System{Zone: s.inLoc}),
		fuzzydate.WithWeekStart(s.parser.WeekStart()),
	)
}

func applyFlagOverrides(cfg *models.Config) {
	if outputFormat != "" {
		cfg.Format = outputFormat
	}

	if inputTimezone != "" {
		cfg.InputTimezone = inputTimezone
	}

	if outputTimezone != "" {
		cfg.OutputTimezone = outputTimezone
	}

	if weekStart != "" {
		cfg.WeekStart = weekStart
	}
}

// format renders t in the output zone with the configured layout.
func (s *settings) format(t time.Time) string {
	if s.outLoc != nil {
		t = t.In(s.outLoc)
	}

	return t.Format(s.cfg.Format)
}
