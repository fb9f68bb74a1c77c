package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
)

// resultEntry is a stored calculation result with expiration
type resultEntry struct {
	result    *zakat.CalculationResult
	expiresAt time.Time
}

// InMemoryResultCache implements ResultCache using an in-memory map.
// Suitable for single-instance deployments and testing.
type InMemoryResultCache struct {
	mu        sync.RWMutex
	entries   map[string]resultEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryResultCache creates a new in-memory result cache.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryResultCache() *InMemoryResultCache {
	c := &InMemoryResultCache{
		entries:  make(map[string]resultEntry),
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

func cacheKey(userID, fingerprint string) string {
	return userID + ":" + fingerprint
}

// Get returns the cached result for a fingerprint, or nil on a miss
func (c *InMemoryResultCache) Get(ctx context.Context, userID, fingerprint string) (*zakat.CalculationResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[cacheKey(userID, fingerprint)]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, nil
	}
	return e.result, nil
}

// Set stores a result under a fingerprint with a TTL
func (c *InMemoryResultCache) Set(ctx context.Context, userID, fingerprint string, result *zakat.CalculationResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(userID, fingerprint)] = resultEntry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// InvalidateUser removes all cached results for a user
func (c *InMemoryResultCache) InvalidateUser(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := userID + ":"
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

// Close stops the cleanup goroutine
func (c *InMemoryResultCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
	return nil
}

// cleanupLoop periodically removes expired entries
func (c *InMemoryResultCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *InMemoryResultCache) removeExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
