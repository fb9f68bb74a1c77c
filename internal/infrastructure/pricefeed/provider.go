package pricefeed

import (
	"context"

	"github.com/shopspring/decimal"
)

// MetalPrices holds the current per-gram prices used to value the nisab
// thresholds. Prices are in the application's reporting currency.
type MetalPrices struct {
	GoldPerGram   decimal.Decimal `json:"gold_per_gram"`
	SilverPerGram decimal.Decimal `json:"silver_per_gram"`
}

// MetalPriceProvider supplies the metal prices needed to compute nisab
// thresholds. Implementations may read from configuration, a cache or a
// live market feed.
type MetalPriceProvider interface {
	Prices(ctx context.Context) (MetalPrices, error)
}
