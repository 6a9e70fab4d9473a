package pen

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sig-0/penrates/fetch"
	"github.com/sig-0/penrates/rates"
)

const spotPriceSelector = `[data-test='instrument-price-last']`

// SpotSource extracts the single interbank reference price
type SpotSource struct {
	url  string
	opts sourceOptions
}

// NewSpotSource creates a new spot reference source
func NewSpotSource(url string, opts ...SourceOption) *SpotSource {
	s := &SpotSource{
		url:  url,
		opts: defaultSourceOptions(),
	}

	// Apply the options
	for _, opt := range opts {
		opt(&s.opts)
	}

	return s
}

// Extract navigates to the reference page and returns the spot price,
// rounded to 4 decimals. A missing or unparsable element is an error,
// which callers record as an absent value for the cycle
func (s *SpotSource) Extract(
	ctx context.Context,
	session fetch.Session,
) (float64, error) {
	err := withRetry(ctx, s.opts.attempts, s.opts.backoff,
		func(ctx context.Context) error {
			return session.Navigate(ctx, s.url)
		},
	)
	if err != nil {
		return 0, fmt.Errorf("unable to open spot page: %w", err)
	}

	err = withRetry(ctx, s.opts.attempts, s.opts.backoff,
		func(ctx context.Context) error {
			return session.WaitVisible(ctx, spotPriceSelector)
		},
	)
	if err != nil {
		return 0, fmt.Errorf("spot price never rendered: %w", err)
	}

	html, err := session.HTML(ctx)
	if err != nil {
		return 0, fmt.Errorf("unable to read rendered page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, fmt.Errorf("unable to construct query doc: %w", err)
	}

	sel := doc.Find(spotPriceSelector).First()
	if sel.Length() == 0 {
		return 0, fmt.Errorf("missing spot price element %s", spotPriceSelector)
	}

	v, err := rates.ParseDecimal(sel.Text())
	if err != nil {
		return 0, fmt.Errorf("unable to parse spot price: %w", err)
	}

	return rates.Round4(v), nil
}
