package pen

import (
	"context"
	"log/slog"
	"time"

	"github.com/sig-0/penrates/fetch"
	"github.com/sig-0/penrates/rates"
)

// Sampler runs one full collection cycle: both sources in sequence
// on a single browsing session. A cycle always yields a sample, even
// when every source (or the engine itself) fails — continuity of the
// series is prioritized over completeness of any single point
type Sampler struct {
	engine  fetch.Engine
	fintech *FintechSource
	spot    *SpotSource

	interval time.Duration
	logger   *slog.Logger
}

// NewSampler creates a new cycle sampler over the given sources
func NewSampler(
	engine fetch.Engine,
	fintech *FintechSource,
	spot *SpotSource,
	interval time.Duration,
	opts ...SamplerOption,
) *Sampler {
	s := &Sampler{
		engine:   engine,
		fintech:  fintech,
		spot:     spot,
		interval: interval,
		logger:   noopLogger,
	}

	// Apply the options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Sampler) Name() string {
	return "USD/PEN sampler"
}

func (s *Sampler) Interval() time.Duration {
	return s.interval
}

// Collect executes one cycle and assembles its sample
func (s *Sampler) Collect(ctx context.Context) *rates.Sample {
	start := time.Now().UTC()

	session, err := s.engine.Acquire(ctx)
	if err != nil {
		// No engine this cycle; emit an all-absent sample and let
		// the next cycle retry the launch
		s.logger.Error(
			"unable to acquire browsing session",
			"err", err,
		)

		return rates.NewSample(start, rates.Aggregates{}, nil, 0)
	}

	defer func() {
		if err := session.Close(); err != nil {
			s.logger.Warn(
				"unable to close browsing session",
				"err", err,
			)
		}
	}()

	// The sources run in sequence on the shared session, each
	// failing independently of the other
	offers, err := s.fintech.Extract(ctx, session)
	if err != nil {
		s.logger.Error(
			"fintech extraction failed",
			"err", err,
		)

		offers = nil
	}

	var spot *float64

	spotValue, err := s.spot.Extract(ctx, session)
	if err != nil {
		s.logger.Error(
			"spot extraction failed",
			"err", err,
		)
	} else {
		spot = &spotValue
	}

	return rates.NewSample(start, rates.Aggregate(offers), spot, len(offers))
}

type SamplerOption func(s *Sampler)

// WithSamplerLogger specifies the logger for the sampler
func WithSamplerLogger(l *slog.Logger) SamplerOption {
	return func(s *Sampler) {
		s.logger = l
	}
}
