// Package cachemanager provides a typed in-memory cache used to
// memoize contrast computations while the user types.
package cachemanager

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// CacheManager is a typed key/value cache with TTL semantics.
type CacheManager[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, ttl time.Duration)
	Flush()
}

// InMemory backs CacheManager with patrickmn/go-cache.
type InMemory[V any] struct {
	cache *gocache.Cache
}

// NewInMemory creates an in-memory cache.
func NewInMemory[V any](defaultExpiration, cleanupInterval time.Duration) *InMemory[V] {
	return &InMemory[V]{cache: gocache.New(defaultExpiration, cleanupInterval)}
}

// Get retrieves a cached value by key.
func (c *InMemory[V]) Get(key string) (V, bool) {
	var zero V
	value, found := c.cache.Get(key)
	if !found {
		return zero, false
	}
	v, ok := value.(V)
	if !ok {
		return zero, false
	}
	return v, true
}

// Set stores a value under key with the given TTL.
func (c *InMemory[V]) Set(key string, value V, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Flush drops every cached entry.
func (c *InMemory[V]) Flush() {
	c.cache.Flush()
}

// Memoize wraps fn with a read-through cache keyed by the caller.
func Memoize[V any](cache CacheManager[V], key string, ttl time.Duration, fn func() V) V {
	if v, ok := cache.Get(key); ok {
		return v
	}
	v := fn()
	cache.Set(key, v, ttl)
	return v
}
