package rates

import "time"

// NewSample assembles the immutable sample record for one completed
// cycle. The timestamp is the cycle start instant, truncated to
// millisecond precision in UTC. A nil spot carries through as absent
func NewSample(
	start time.Time,
	agg Aggregates,
	spot *float64,
	sampleCount int,
) *Sample {
	s := &Sample{
		Timestamp:   Timestamp(start.UTC().Truncate(time.Millisecond)),
		BidAverage:  agg.BidAverage,
		AskAverage:  agg.AskAverage,
		BestBuy:     agg.BestBuy,
		BestSell:    agg.BestSell,
		SampleCount: sampleCount,
	}

	if spot != nil {
		v := Round4(*spot)
		s.Spot = &v
	}

	return s
}
