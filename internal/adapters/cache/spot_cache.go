package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoSpotCache memoizes the last successful spot rate per source key
// with a per-entry TTL. Only successful fetches are stored, so a failing
// source keeps serving its previous value until the TTL lapses.
type RistrettoSpotCache struct {
	cache *ristretto.Cache
}

func NewSpotCache(maxItems int64) (*RistrettoSpotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create spot cache failed: %w", err)
	}
	return &RistrettoSpotCache{cache: c}, nil
}

func (c *RistrettoSpotCache) Get(key string) (float64, bool) {
	if v, ok := c.cache.Get(key); ok {
		rate, ok := v.(float64)
		return rate, ok
	}
	return 0, false
}

func (c *RistrettoSpotCache) Set(key string, value float64, ttl time.Duration) {
	c.cache.SetWithTTL(key, value, 1, ttl)
}

func (c *RistrettoSpotCache) Close() { c.cache.Close() }
