package pricefeed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/slimatic/zakapp-sub007/internal/infrastructure/config"
)

// StaticProvider serves fixed metal prices taken from configuration.
// It is the fallback when no live feed is wired up; operators keep the
// configured prices current by hand.
type StaticProvider struct {
	prices MetalPrices
}

// NewStaticProvider creates a provider from the configured price strings
func NewStaticProvider(cfg config.NisabConfig) (*StaticProvider, error) {
	gold, err := decimal.NewFromString(cfg.GoldPricePerGram)
	if err != nil {
		return nil, fmt.Errorf("invalid gold price %q: %w", cfg.GoldPricePerGram, err)
	}
	silver, err := decimal.NewFromString(cfg.SilverPricePerGram)
	if err != nil {
		return nil, fmt.Errorf("invalid silver price %q: %w", cfg.SilverPricePerGram, err)
	}
	if !gold.IsPositive() || !silver.IsPositive() {
		return nil, fmt.Errorf("metal prices must be positive (gold=%s silver=%s)", gold, silver)
	}

	return &StaticProvider{
		prices: MetalPrices{
			GoldPerGram:   gold,
			SilverPerGram: silver,
		},
	}, nil
}

// Prices returns the configured metal prices
func (p *StaticProvider) Prices(ctx context.Context) (MetalPrices, error) {
	return p.prices, nil
}
