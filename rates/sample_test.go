package rates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSample(t *testing.T) {
	t.Parallel()

	t.Run("all fields absent", func(t *testing.T) {
		t.Parallel()

		start := time.Date(2026, time.March, 14, 15, 9, 26, 535_897_932, time.UTC)

		s := NewSample(start, Aggregates{}, nil, 0)

		assert.Nil(t, s.BidAverage)
		assert.Nil(t, s.AskAverage)
		assert.Nil(t, s.Spot)
		assert.Nil(t, s.BestBuy)
		assert.Nil(t, s.BestSell)
		assert.Equal(t, 0, s.SampleCount)

		// Millisecond precision, UTC
		assert.Equal(t, start.Truncate(time.Millisecond), s.Timestamp.Time())
	})

	t.Run("spot is rounded", func(t *testing.T) {
		t.Parallel()

		spot := 3.52349
		s := NewSample(time.Now(), Aggregates{}, &spot, 0)

		require.NotNil(t, s.Spot)
		assert.Equal(t, 3.5235, *s.Spot)
	})

	t.Run("absent serializes as null", func(t *testing.T) {
		t.Parallel()

		start := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

		raw, err := json.Marshal(NewSample(start, Aggregates{}, nil, 0))
		require.NoError(t, err)

		var decoded map[string]any

		require.NoError(t, json.Unmarshal(raw, &decoded))

		// Absent must be an explicit null, never 0 or a dropped field
		for _, field := range []string{
			"bid_average",
			"ask_average",
			"spot",
			"best_buy",
			"best_sell",
		} {
			v, ok := decoded[field]

			require.True(t, ok, "field %q must be present", field)
			assert.Nil(t, v, "field %q must be null", field)
		}

		assert.Equal(t, "2026-03-14T15:09:26.000Z", decoded["timestamp"])
		assert.Equal(t, float64(0), decoded["sample_count"])
	})

	t.Run("non UTC input is normalized", func(t *testing.T) {
		t.Parallel()

		lima := time.FixedZone("PET", -5*60*60)
		start := time.Date(2026, time.March, 14, 10, 0, 0, 0, lima)

		s := NewSample(start, Aggregates{}, nil, 0)

		assert.Equal(t, time.UTC, s.Timestamp.Time().Location())
		assert.Equal(t, 15, s.Timestamp.Time().Hour())
	})
}

func TestTimestamp_RoundTrip(t *testing.T) {
	t.Parallel()

	original := Timestamp(time.Date(2026, time.March, 14, 15, 9, 26, 535_000_000, time.UTC))

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	assert.Equal(t, `"2026-03-14T15:09:26.535Z"`, string(raw))

	var decoded Timestamp

	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Time().Equal(original.Time()))
}
