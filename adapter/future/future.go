// Package future adapts a cache.Dispatcher onto a cooperative-async
// surface: a Future is polled rather than blocked on, so a caller
// integrating with its own event loop (e.g. inside a select alongside
// other channels) can await a result without blocking one of its own
// goroutines on the wait; each Future runs one internal goroutine that
// receives the reply. This is the Go analogue of polling a Rust/JS-style
// future.
package future

import (
	"time"

	"github.com/shardkeeper/filekv/cache"
)

// Future is a non-blocking handle to a single pending job. It resolves
// exactly once; Poll and Done may be called any number of times, from
// any goroutine, before and after resolution.
type Future struct {
	ch   <-chan cache.Result
	done chan struct{}

	resolved bool
	result   cache.Result
}

func newFuture(ch <-chan cache.Result) *Future {
	f := &Future{ch: ch, done: make(chan struct{})}
	go func() {
		f.result = <-ch
		f.resolved = true
		close(f.done)
	}()
	return f
}

// Poll reports the result if resolved; ok is false if the job is still
// in flight. Poll never blocks.
func (f *Future) Poll() (result cache.Result, ok bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return cache.Result{}, false
	}
}

// Done returns a channel closed the instant the future resolves, for
// use in a select alongside a caller's own event sources.
func (f *Future) Done() <-chan struct{} { return f.done }

// Cache wraps a cache.Dispatcher with Future-returning methods.
type Cache struct {
	d cache.Dispatcher
}

// New wraps d for cooperative-async use.
func New(d cache.Dispatcher) *Cache { return &Cache{d: d} }

// Set returns a Future for a pending write.
func (c *Cache) Set(key string, value []byte, ttl time.Duration) *Future {
	return newFuture(c.d.SetCh(key, value, ttl))
}

// Get returns a Future for a pending read.
func (c *Cache) Get(key string) *Future {
	return newFuture(c.d.GetCh(key))
}

// Remove returns a Future for a pending removal.
func (c *Cache) Remove(key string) *Future {
	return newFuture(c.d.RemoveCh(key))
}

// Clear returns a Future for a pending full-root clear.
func (c *Cache) Clear() *Future {
	return newFuture(c.d.ClearCh())
}

// Cleanup returns a Future for a pending synchronous janitor sweep.
func (c *Cache) Cleanup() *Future {
	return newFuture(c.d.CleanupCh())
}

// Close releases the underlying dispatcher.
func (c *Cache) Close() error { return c.d.Close() }
