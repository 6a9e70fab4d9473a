package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/sig-0/iq"
)

var (
	errInvalidCollector = errors.New("invalid collector")
	errInvalidInterval  = errors.New("invalid interval")
)

// Orchestrator is the cycle scheduler for registered collectors.
// A collector's first cycle triggers immediately on registration;
// each subsequent trigger is queued at trigger time + interval, so a
// cycle that overruns its interval overlaps the next one instead of
// delaying it. The orchestrator loop is the sole writer to the sink,
// which serializes commits from overlapping cycles
type Orchestrator struct {
	sink   Sink
	logger *slog.Logger

	registeredCollectors sync.Map

	q             iq.Queue[scheduledCycle]
	queryInterval time.Duration
	qMux          sync.Mutex
}

// New creates a new Orchestrator instance committing to the given sink
func New(sink Sink, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		sink:          sink,
		q:             iq.NewQueue[scheduledCycle](),
		queryInterval: time.Second, // every second
	}

	// Apply the options
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Register registers a new collector with the orchestrator.
// The collector's first cycle is queued for immediate execution
func (o *Orchestrator) Register(c Collector) error {
	if c == nil || c.Name() == "" {
		return errInvalidCollector
	}

	if c.Interval() <= 0 {
		return errInvalidInterval
	}

	// Register the collector
	id := xid.New()
	o.registeredCollectors.Store(id, c)

	o.logger.Info(
		"registered new collector",
		"name", c.Name(),
	)

	// Queue the first cycle
	o.scheduleCycle(
		time.Now().UTC(),
		id,
		c,
	)

	return nil
}

// Start starts the cycle orchestration service loop [BLOCKING]
func (o *Orchestrator) Start(ctx context.Context) error {
	collectorCh := make(chan *workerResponse, 100)

	// Start a listener for monitoring due cycles
	ticker := time.NewTicker(o.queryInterval)
	defer ticker.Stop()

	// handleDue spawns every cycle that is executable (due).
	// The next trigger is queued before the cycle runs, so the
	// timeline never stretches with cycle duration
	handleDue := func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				nextSC := o.nextCycle()
				if nextSC == nil {
					return // nothing to trigger anymore
				}

				o.logger.Info(
					"triggering cycle",
					"name", nextSC.collector.Name(),
				)

				// Queue the follow-up trigger right away
				o.scheduleCycle(
					time.Now().UTC().Add(nextSC.collector.Interval()),
					nextSC.collectorID,
					nextSC.collector,
				)

				// Spawn the cycle worker
				info := &workerInfo{
					collector:   nextSC.collector,
					collectorID: nextSC.collectorID,
					resCh:       collectorCh,
				}

				go handleCycle(ctx, info)
			}
		}
	}

	// Trigger the first set of due cycles (on boot)
	handleDue()

	for {
		select {
		case <-ctx.Done():
			// In-flight cycles may still be draining into the
			// channel; leave it open for them
			o.logger.Info("orchestrator service shut down")

			return nil
		case <-ticker.C:
			handleDue()
		case response := <-collectorCh:
			if _, ok := o.registeredCollectors.Load(response.collectorID); !ok {
				o.logger.Error(
					"unable to load registered collector",
					"id", response.collectorID.String(),
				)

				continue
			}

			// Commit the cycle's sample.
			// Responses are consumed one at a time here, so
			// overlapping cycles never interleave their commits
			o.sink.Append(response.sample)

			o.logger.Info(
				"committed cycle sample",
				"timestamp", response.sample.Timestamp.Time().String(),
				"sample_count", response.sample.SampleCount,
			)
		}
	}
}

// scheduleCycle queues a future cycle trigger
func (o *Orchestrator) scheduleCycle(
	at time.Time,
	collectorID xid.ID,
	collector Collector,
) {
	o.qMux.Lock()
	defer o.qMux.Unlock()

	futureSC := scheduledCycle{
		at:          at,
		collectorID: collectorID,
		collector:   collector,
	}

	o.q.Push(futureSC)
}

// nextCycle fetches the next due cycle, as of the moment of calling
func (o *Orchestrator) nextCycle() *scheduledCycle {
	o.qMux.Lock()
	defer o.qMux.Unlock()

	now := time.Now().UTC()

	// Check if anything needs to be triggered
	if o.q.Len() == 0 {
		return nil // nothing queued
	}

	// Check if the top element is due
	if o.q.Index(0).at.After(now) {
		return nil // nothing due, earliest trigger is in the future
	}

	// Grab the next cycle
	nextSC := o.q.PopFront()

	return nextSC
}
