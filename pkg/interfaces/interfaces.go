package interfaces

import (
	"context"
	"time"

	"fuzzydate/pkg/models"
)

// Clock supplies the anchor instant and zone for phrases parsed without an
// explicit anchor.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// Sink represents any destination that can receive batch resolutions (a
// terminal, a YAML or JSON document).
type Sink interface {
	Name() string
	Write(ctx context.Context, results []models.Resolution) error
}
