package rates

import (
	"strconv"
	"time"
)

// NameUnknown is the display-name fallback for entries whose
// label cannot be resolved on the page
const NameUnknown = "N/A"

// timestampLayout is RFC3339 with fixed millisecond precision
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a UTC instant serialized with millisecond precision
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Time().Format(timestampLayout))), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	parsed, err := time.Parse(timestampLayout, raw)
	if err != nil {
		return err
	}

	*t = Timestamp(parsed.UTC())

	return nil
}

// Time returns the underlying UTC time
func (t Timestamp) Time() time.Time {
	return time.Time(t).UTC()
}

// Offer is a single exchange house's quoted buy / sell price pair,
// kept in raw text form until aggregation
type Offer struct {
	Name     string `json:"name"`
	BuyText  string `json:"buy"`
	SellText string `json:"sell"`
}

// PricePoint pairs a source name with a single quoted price
type PricePoint struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Sample is one immutable point in the day's time series.
// Nil numeric fields mean "no data this cycle", which is distinct
// from a value of 0 and is serialized as an explicit null
type Sample struct {
	Timestamp   Timestamp   `json:"timestamp"`
	BidAverage  *float64    `json:"bid_average"`
	AskAverage  *float64    `json:"ask_average"`
	Spot        *float64    `json:"spot"`
	BestBuy     *PricePoint `json:"best_buy"`
	BestSell    *PricePoint `json:"best_sell"`
	SampleCount int         `json:"sample_count"`
}
