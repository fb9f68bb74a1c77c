package cache

import (
	"context"
	"time"

	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
)

// ResultCache stores calculation results keyed by owner and an input
// fingerprint. Identical inputs always produce identical results, so a
// cached entry can be returned verbatim until the inputs change.
type ResultCache interface {
	// Get returns the cached result for a fingerprint, or nil on a miss.
	Get(ctx context.Context, userID, fingerprint string) (*zakat.CalculationResult, error)

	// Set stores a result under a fingerprint with a TTL.
	Set(ctx context.Context, userID, fingerprint string, result *zakat.CalculationResult, ttl time.Duration) error

	// InvalidateUser removes all cached results for a user. Called whenever
	// the user's assets or liabilities change.
	InvalidateUser(ctx context.Context, userID string) error

	// Close releases any resources held by the cache.
	Close() error
}
