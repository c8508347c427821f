// Package blocking adapts a cache.Dispatcher onto the most idiomatic
// Go surface: every call blocks the caller's goroutine on the job's
// reply channel and returns (value, found, err) or err directly. It
// adds no behavior beyond receiving on the channel the dispatcher
// already returns; it exists for symmetry with the callback and future
// adapters and so callers outside package cache don't need to know the
// reply-channel contract themselves.
package blocking

import (
	"time"

	"github.com/shardkeeper/filekv/cache"
)

// Cache wraps a cache.Dispatcher with blocking methods.
type Cache struct {
	d cache.Dispatcher
}

// New wraps d for blocking use.
func New(d cache.Dispatcher) *Cache { return &Cache{d: d} }

// Set stores value under key with the given TTL (<=0 means never
// expires) and blocks until the write completes or fails.
func (c *Cache) Set(key string, value []byte, ttl time.Duration) error {
	r := <-c.d.SetCh(key, value, ttl)
	return r.Err
}

// Get blocks until the read completes, returning the value and whether
// it was found.
func (c *Cache) Get(key string) (value []byte, found bool, err error) {
	r := <-c.d.GetCh(key)
	return r.Value, r.Found, r.Err
}

// Remove blocks until the key is removed. Removing an absent key is
// success.
func (c *Cache) Remove(key string) error {
	r := <-c.d.RemoveCh(key)
	return r.Err
}

// Clear blocks until every entry under the cache root is deleted.
func (c *Cache) Clear() error {
	r := <-c.d.ClearCh()
	return r.Err
}

// Cleanup blocks until a full synchronous janitor sweep completes.
func (c *Cache) Cleanup() error {
	r := <-c.d.CleanupCh()
	return r.Err
}

// Close releases the underlying dispatcher.
func (c *Cache) Close() error { return c.d.Close() }
