package ingest

import (
	"context"
	"time"

	"github.com/rs/xid"

	"github.com/sig-0/penrates/rates"
)

// scheduledCycle is a single queued cycle trigger
type scheduledCycle struct {
	at          time.Time
	collector   Collector
	collectorID xid.ID
}

// Less is utilized to sort queued triggers by their due-time (earliest == first)
func (a scheduledCycle) Less(b scheduledCycle) bool {
	return a.at.Before(b.at)
}

// workerInfo is the work context for the cycle routine
type workerInfo struct {
	collector   Collector
	resCh       chan<- *workerResponse
	collectorID xid.ID
}

// workerResponse is the cycle routine response
type workerResponse struct {
	sample      *rates.Sample // the cycle's sample, always set
	collectorID xid.ID        // the collector ID
}

// handleCycle runs one collection cycle
func handleCycle(
	ctx context.Context,
	info *workerInfo,
) {
	sample := info.collector.Collect(ctx)

	response := &workerResponse{
		sample:      sample,
		collectorID: info.collectorID,
	}

	select {
	case <-ctx.Done():
	case info.resCh <- response:
	}
}
