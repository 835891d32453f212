package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"rsi-analyzer/internal/model"
)

// cacheEntry is one cached bar series with its expiry.
type cacheEntry struct {
	bars      []model.PriceBar
	expiresAt time.Time
}

// Cache is an in-memory TTL cache for fetched bar series, keyed by
// (ticker, timeframe, range). Expiry is owned entirely by the data layer;
// the analysis core never sees it.
type Cache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
	done  chan struct{}
}

// NewCache creates a Cache with the given TTL and starts a background sweep
// of expired entries. Call Close when the cache is no longer needed.
func NewCache(ttl time.Duration) *Cache {
	c := &Cache{
		store: make(map[string]cacheEntry),
		ttl:   ttl,
		done:  make(chan struct{}),
	}
	go c.cleanup()
	return c
}

// Get returns the cached series for key if present and not expired.
func (c *Cache) Get(key string) ([]model.PriceBar, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.bars, true
}

// Set stores a series under key with the cache's TTL.
func (c *Cache) Set(key string, bars []model.PriceBar) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = cacheEntry{
		bars:      bars,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry)
}

// Close stops the background sweep.
func (c *Cache) Close() {
	close(c.done)
}

func (c *Cache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.store {
				if now.After(entry.expiresAt) {
					delete(c.store, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// CacheKey creates a deterministic key from the fetch parameters.
func CacheKey(ticker, timeframe string) string {
	keyStr := fmt.Sprintf("%s:%s:%s", ticker, timeframe, PeriodFor(timeframe))
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
