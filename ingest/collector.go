package ingest

import (
	"context"
	"time"

	"github.com/sig-0/penrates/rates"
)

// Collector runs one full sampling cycle when triggered.
// Collect must always return a sample — source failures surface as
// absent fields, never as a skipped cycle
type Collector interface {
	// Name returns the human-readable name of the collector
	Name() string

	// Interval returns the interval at which cycles are triggered
	Interval() time.Duration

	// Collect executes one cycle and returns its sample
	Collect(context.Context) *rates.Sample
}

// Sink receives each completed cycle's sample.
// The history store satisfies it directly; the stream hub wraps the
// store to broadcast as it commits
type Sink interface {
	Append(*rates.Sample)
}
