// Package cache implements a file-backed, process-local key/value
// cache with per-entry TTL and a background cleanup loop.
//
// Design
//
//   - Concurrency: the key space is partitioned into a fixed 4096
//     shards, each a directory under the cache root and a slot in a
//     fixed-size reader/writer lock table (internal/shardlock). Reads
//     take a shared lock; writes, removes, and janitor sweeps take an
//     exclusive lock, attempted non-blocking by the janitor so a hot
//     shard never stalls cleanup or vice versa.
//
//   - Storage: each entry is a single file, a 10-byte header (reserved
//     + big-endian expiration seconds) followed by the opaque value
//     (internal/codec). Writes replace atomically via a sibling
//     temp-file-then-rename.
//
//   - Dispatch: a fixed pool of worker goroutines, each with its own
//     job queue, executes I/O on behalf of callers so no caller thread
//     ever touches the filesystem directly. A worker that panics marks
//     itself dead and resolves every job still buffered in its queue
//     with ErrWorkerGone, rather than leaving a caller waiting forever.
//
//   - Janitor: a dedicated timer goroutine round-robins all 4096
//     shards, deleting expired files wherever it can take a
//     non-blocking exclusive lock, skipping contended shards for the
//     next tick.
//
//   - Process guard: at most one Keeper may hold a given root at a
//     time, enforced by a pidfile in <root>/.lock (internal/guard).
//
// Basic usage
//
//	k, err := cache.Build(cache.Options{RootPath: "/var/lib/mycache"})
//	if err != nil {
//	    // ...
//	}
//	defer k.Close()
//
//	<-k.SetCh("alpha", []byte{0x01, 0x02}, 2*time.Second)
//	r := <-k.GetCh("alpha")
//	if r.Found {
//	    _ = r.Value
//	}
//
// Three adapters (adapter/blocking, adapter/callback, adapter/future)
// wrap the same Keeper with a directly-blocking, a callback-style, and
// a cooperative-async surface respectively; none duplicates the engine
// above, they only differ in how a caller awaits a Result.
//
// Exporting metrics
//
//	m := prom.New(nil, "keeper", "cache", nil) // implements cache.Metrics
//	k, err := cache.Build(cache.Options{RootPath: "/var/lib/mycache", Metrics: m})
package cache
