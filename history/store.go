package history

import (
	"sync"
	"time"

	"github.com/sig-0/penrates/rates"
)

// DefaultMaxSamples is the hard cap on retained samples for a day
const DefaultMaxSamples = 2000

// Store is the append-only in-memory sequence of the current UTC
// day's samples. Appending a sample from a new day evicts everything
// from prior days first, and the total length is capped FIFO.
// There is no durable backing; the series lives and dies with the
// process
type Store struct {
	samples []*rates.Sample
	max     int

	mu sync.RWMutex
}

// New creates an empty store. A non-positive max falls back to
// DefaultMaxSamples
func New(max int) *Store {
	if max <= 0 {
		max = DefaultMaxSamples
	}

	return &Store{
		max: max,
	}
}

// Append adds the sample to the series, evicting members from prior
// UTC dates and then the oldest members beyond the cap
func (s *Store) Append(sample *rates.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := sample.Timestamp.Time()

	kept := s.samples[:0]

	for _, existing := range s.samples {
		if sameUTCDate(existing.Timestamp.Time(), day) {
			kept = append(kept, existing)
		}
	}

	kept = append(kept, sample)

	// Oldest out first once over the cap
	if over := len(kept) - s.max; over > 0 {
		n := copy(kept, kept[over:])
		kept = kept[:n]
	}

	s.samples = kept
}

// Snapshot returns a copy of the current ordered sample sequence
func (s *Store) Snapshot() []*rates.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*rates.Sample, len(s.samples))
	copy(out, s.samples)

	return out
}

// Len returns the current number of retained samples
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.samples)
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()

	return ay == by && am == bm && ad == bd
}
