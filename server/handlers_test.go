package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/penrates/rates"
	"github.com/sig-0/penrates/server/config"
)

func TestHandlers_Health(t *testing.T) {
	t.Parallel()

	s := &Server{
		logger: noopLogger,
		history: &mockHistory{
			lenFn: func() int {
				return 42
			},
		},
		stream: &mockStreamer{
			clientCountFn: func() int {
				return 3
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	w := httptest.NewRecorder()

	s.Health(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse

	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 42, resp.Samples)
	assert.Equal(t, 3, resp.Clients)
}

func TestHandlers_RatesToday(t *testing.T) {
	t.Parallel()

	t.Run("empty day", func(t *testing.T) {
		t.Parallel()

		s := &Server{
			logger:  noopLogger,
			history: &mockHistory{},
			stream:  &mockStreamer{},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/rates/today", http.NoBody)
		w := httptest.NewRecorder()

		s.RatesToday(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp RatesTodayResponse

		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Empty(t, resp.Results)
	})

	t.Run("populated day", func(t *testing.T) {
		t.Parallel()

		var (
			day = time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

			bid  = 3.516
			ask  = 3.5425
			spot = 3.5215

			samples = []*rates.Sample{
				rates.NewSample(
					day,
					rates.Aggregates{
						BidAverage: &bid,
						AskAverage: &ask,
						BestBuy:    &rates.PricePoint{Name: "Rextie", Price: 3.54},
						BestSell:   &rates.PricePoint{Name: "Rextie", Price: 3.52},
					},
					&spot,
					2,
				),
				rates.NewSample(day.Add(5*time.Minute), rates.Aggregates{}, nil, 0),
			}

			s = &Server{
				logger: noopLogger,
				history: &mockHistory{
					snapshotFn: func() []*rates.Sample {
						return samples
					},
				},
				stream: &mockStreamer{},
			}
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/rates/today", http.NoBody)
		w := httptest.NewRecorder()

		s.RatesToday(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp RatesTodayResponse

		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Results, 2)

		first := resp.Results[0]

		require.NotNil(t, first.BidAverage)
		assert.Equal(t, bid, *first.BidAverage)

		require.NotNil(t, first.BestBuy)
		assert.Equal(t, "Rextie", first.BestBuy.Name)

		// The failed cycle's sample keeps explicit absents
		second := resp.Results[1]

		assert.Nil(t, second.BidAverage)
		assert.Nil(t, second.Spot)
		assert.Equal(t, 0, second.SampleCount)
	})
}

func TestServer_New(t *testing.T) {
	t.Parallel()

	t.Run("invalid configuration", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.ListenAddress = "not-an-address"

		s, err := New(
			&mockHistory{},
			&mockStreamer{},
			WithConfig(cfg),
		)

		assert.Nil(t, s)
		assert.ErrorIs(t, err, config.ErrInvalidListenAddress)
	})

	t.Run("routes registered", func(t *testing.T) {
		t.Parallel()

		s, err := New(&mockHistory{}, &mockStreamer{})

		require.NoError(t, err)
		require.NotNil(t, s)

		for _, path := range []string{
			"/health",
			"/v1/rates/today",
		} {
			req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
			w := httptest.NewRecorder()

			s.mux.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
		}
	})
}
