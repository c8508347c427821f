// Package callback adapts a cache.Dispatcher onto a completion-closure
// surface: the caller passes a one-shot function invoked with the
// Result once the worker has released the shard lock and delivered it.
// The closure runs on a dedicated awaiting goroutine, not the caller's;
// callers must not assume which goroutine that is, and must not block
// inside it.
package callback

import (
	"time"

	"github.com/shardkeeper/filekv/cache"
)

// Cache wraps a cache.Dispatcher with callback-style methods.
type Cache struct {
	d cache.Dispatcher
}

// New wraps d for callback-style use.
func New(d cache.Dispatcher) *Cache { return &Cache{d: d} }

func await(ch <-chan cache.Result, fn func(cache.Result)) {
	go func() { fn(<-ch) }()
}

// SetAsync stores value under key with ttl and invokes fn with the
// outcome once the write completes or fails.
func (c *Cache) SetAsync(key string, value []byte, ttl time.Duration, fn func(cache.Result)) {
	await(c.d.SetCh(key, value, ttl), fn)
}

// GetAsync invokes fn with the read outcome once it completes.
func (c *Cache) GetAsync(key string, fn func(cache.Result)) {
	await(c.d.GetCh(key), fn)
}

// RemoveAsync invokes fn once the key is removed.
func (c *Cache) RemoveAsync(key string, fn func(cache.Result)) {
	await(c.d.RemoveCh(key), fn)
}

// ClearAsync invokes fn once every entry under the cache root is deleted.
func (c *Cache) ClearAsync(fn func(cache.Result)) {
	await(c.d.ClearCh(), fn)
}

// CleanupAsync invokes fn once a full synchronous janitor sweep completes.
func (c *Cache) CleanupAsync(fn func(cache.Result)) {
	await(c.d.CleanupCh(), fn)
}

// Close releases the underlying dispatcher.
func (c *Cache) Close() error { return c.d.Close() }
