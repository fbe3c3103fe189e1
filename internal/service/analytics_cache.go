package service

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// AnalyticsCache memoizes analytics responses. Keys carry the version of the
// user's record set, so a write makes older entries unreachable and they age
// out through LRU eviction or the TTL.
type AnalyticsCache struct {
	lru *expirable.LRU[string, any]
}

// NewAnalyticsCache returns a cache holding up to size responses for ttl.
// A non-positive size disables caching.
func NewAnalyticsCache(size int, ttl time.Duration) *AnalyticsCache {
	if size <= 0 {
		return nil
	}
	return &AnalyticsCache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (c *AnalyticsCache) get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(key)
}

func (c *AnalyticsCache) add(key string, value any) {
	if c == nil {
		return
	}
	c.lru.Add(key, value)
}

// Len reports the number of cached responses.
func (c *AnalyticsCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

func analyticsKey(parts ...string) string {
	return strings.Join(parts, "|")
}
