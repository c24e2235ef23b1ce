package http

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/brandsight"
)

const (
	defaultCacheEntries = 512
	defaultCacheTTL     = time.Hour
)

// assetCache is a bounded in-memory cache for proxied assets, keyed by the
// xxhash of the asset URL. It is safe for concurrent use.
type assetCache struct {
	mu         sync.RWMutex
	store      map[uint64]*cacheEntry
	maxEntries int
	ttl        time.Duration
}

type cacheEntry struct {
	asset     *brandsight.Asset
	createdAt time.Time
}

func newAssetCache(maxEntries int, ttl time.Duration) *assetCache {
	return &assetCache{
		store:      make(map[uint64]*cacheEntry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

func (c *assetCache) get(url string) (*brandsight.Asset, bool) {
	if c.maxEntries <= 0 {
		return nil, false
	}
	key := xxhash.Sum64String(url)

	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()

	if !ok || time.Since(e.createdAt) > c.ttl {
		return nil, false
	}
	return e.asset, true
}

func (c *assetCache) set(url string, asset *brandsight.Asset) {
	if c.maxEntries <= 0 {
		return
	}
	key := xxhash.Sum64String(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict one arbitrary entry when at capacity (map iteration order is
	// random in Go).
	if len(c.store) >= c.maxEntries {
		for k := range c.store {
			delete(c.store, k)
			break
		}
	}
	c.store[key] = &cacheEntry{asset: asset, createdAt: time.Now()}
}
