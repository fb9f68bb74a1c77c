package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const priceKey = "zakat:metal_prices"

// CachedProvider decorates another provider with a Redis cache so that
// repeated calculations within the TTL do not hit the upstream feed.
// Falls back to the upstream provider on any cache error.
type CachedProvider struct {
	upstream MetalPriceProvider
	client   *redis.Client
	ttl      time.Duration
}

// NewCachedProvider wraps a provider with Redis caching
func NewCachedProvider(upstream MetalPriceProvider, client *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		upstream: upstream,
		client:   client,
		ttl:      ttl,
	}
}

// Prices returns cached prices when fresh, otherwise fetches from the
// upstream provider and refreshes the cache.
func (p *CachedProvider) Prices(ctx context.Context) (MetalPrices, error) {
	data, err := p.client.Get(ctx, priceKey).Bytes()
	if err == nil {
		var prices MetalPrices
		if jsonErr := json.Unmarshal(data, &prices); jsonErr == nil {
			return prices, nil
		}
		// Corrupt entry, fall through to upstream
	} else if !errors.Is(err, redis.Nil) {
		// Cache unavailable, fall through to upstream
	}

	prices, err := p.upstream.Prices(ctx)
	if err != nil {
		return MetalPrices{}, err
	}

	if data, err := json.Marshal(prices); err == nil {
		_ = p.client.Set(ctx, priceKey, data, p.ttl).Err()
	}

	return prices, nil
}
