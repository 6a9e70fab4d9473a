package ingest

import (
	"context"
	"time"

	"github.com/sig-0/penrates/rates"
)

type (
	nameDelegate     func() string
	intervalDelegate func() time.Duration
	collectDelegate  func(context.Context) *rates.Sample
	appendDelegate   func(*rates.Sample)
)

type mockCollector struct {
	nameFn     nameDelegate
	intervalFn intervalDelegate
	collectFn  collectDelegate
}

func (m *mockCollector) Name() string {
	if m.nameFn != nil {
		return m.nameFn()
	}

	return ""
}

func (m *mockCollector) Interval() time.Duration {
	if m.intervalFn != nil {
		return m.intervalFn()
	}

	return 0
}

func (m *mockCollector) Collect(ctx context.Context) *rates.Sample {
	if m.collectFn != nil {
		return m.collectFn(ctx)
	}

	return nil
}

type mockSink struct {
	appendFn appendDelegate
}

func (m *mockSink) Append(sample *rates.Sample) {
	if m.appendFn != nil {
		m.appendFn(sample)
	}
}
