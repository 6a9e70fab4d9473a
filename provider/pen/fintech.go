package pen

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sig-0/penrates/fetch"
	"github.com/sig-0/penrates/rates"
)

// The board's generated class suffixes change across deploys, so
// entries are matched by prefix only
const (
	fintechEntrySelector = `div[class^='ExchangeHouseItem']`
	fintechNameSelector  = `[class^='ExchangeHouseItem_name']`
	fintechPriceSelector = `p[class^='ValueQuotation']`
)

// FintechSource extracts the exchange-house offer board
type FintechSource struct {
	url  string
	opts sourceOptions
}

// NewFintechSource creates a new fintech board source
func NewFintechSource(url string, opts ...SourceOption) *FintechSource {
	s := &FintechSource{
		url:  url,
		opts: defaultSourceOptions(),
	}

	// Apply the options
	for _, opt := range opts {
		opt(&s.opts)
	}

	return s
}

// Extract navigates to the board and returns the valid offers found.
// Failures at any step surface as an error, never as a partial set
// mixed with a success
func (s *FintechSource) Extract(
	ctx context.Context,
	session fetch.Session,
) ([]rates.Offer, error) {
	err := withRetry(ctx, s.opts.attempts, s.opts.backoff,
		func(ctx context.Context) error {
			return session.Navigate(ctx, s.url)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("unable to open fintech board: %w", err)
	}

	err = withRetry(ctx, s.opts.attempts, s.opts.backoff,
		func(ctx context.Context) error {
			return session.WaitVisible(ctx, fintechEntrySelector)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("fintech board never rendered: %w", err)
	}

	html, err := session.HTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to read rendered board: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("unable to construct query doc: %w", err)
	}

	return parseOffers(doc), nil
}

// parseOffers walks the exchange-house entries on the rendered board.
// An entry yielding fewer than two price cells is dropped entirely
func parseOffers(doc *goquery.Document) []rates.Offer {
	offers := make([]rates.Offer, 0, 16)

	doc.Find(fintechEntrySelector).Each(func(_ int, entry *goquery.Selection) {
		prices := entry.Find(fintechPriceSelector)
		if prices.Length() < 2 {
			return
		}

		name := strings.TrimSpace(entry.Find(fintechNameSelector).First().Text())
		if name == "" {
			name = rates.NameUnknown
		}

		// Price cells appear in fixed buy, sell order
		offers = append(offers, rates.Offer{
			Name:     name,
			BuyText:  strings.TrimSpace(prices.Eq(0).Text()),
			SellText: strings.TrimSpace(prices.Eq(1).Text()),
		})
	})

	return offers
}
