package rates

// Aggregates holds the per-cycle statistics derived from an offer set.
// Nil fields mean no valid candidates existed
type Aggregates struct {
	BidAverage *float64
	AskAverage *float64
	BestBuy    *PricePoint
	BestSell   *PricePoint
}

// Aggregate computes bid / ask averages and best-offer rankings over
// the given offer set. Only strictly-positive, successfully-parsed
// prices participate.
//
// The buy / sell inversion in the rankings is intentional: the price
// at which a house sells currency is the price the end user pays to
// buy it, so the cheapest place to buy is the minimum sell price, and
// the best place to liquidate is the maximum buy price. Ties are
// broken by encounter order (first wins)
func Aggregate(offers []Offer) Aggregates {
	var (
		buySum, sellSum   float64
		buyN, sellN       int
		bestBuy, bestSell *PricePoint
	)

	for _, offer := range offers {
		if buy, err := ParseDecimal(offer.BuyText); err == nil && buy > 0 {
			buySum += buy
			buyN++

			if bestSell == nil || buy > bestSell.Price {
				bestSell = &PricePoint{
					Name:  offer.Name,
					Price: buy,
				}
			}
		}

		if sell, err := ParseDecimal(offer.SellText); err == nil && sell > 0 {
			sellSum += sell
			sellN++

			if bestBuy == nil || sell < bestBuy.Price {
				bestBuy = &PricePoint{
					Name:  offer.Name,
					Price: sell,
				}
			}
		}
	}

	agg := Aggregates{
		BestBuy:  roundPoint(bestBuy),
		BestSell: roundPoint(bestSell),
	}

	if buyN > 0 {
		avg := Round4(buySum / float64(buyN))
		agg.BidAverage = &avg
	}

	if sellN > 0 {
		avg := Round4(sellSum / float64(sellN))
		agg.AskAverage = &avg
	}

	return agg
}

func roundPoint(p *PricePoint) *PricePoint {
	if p == nil {
		return nil
	}

	return &PricePoint{
		Name:  p.Name,
		Price: Round4(p.Price),
	}
}
