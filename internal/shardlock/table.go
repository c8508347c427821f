// Package shardlock is the fixed-size reader/writer lock table the cache
// maps its 4096 shards onto. The table is allocated once, up front, at
// its full size — shard locks are never created lazily, which is what
// lets the janitor take a non-blocking try-lock on any shard without a
// map lookup or allocation in the hot path.
package shardlock

import "sync"

// Count is the number of lock slots in the table, one per shard id.
const Count = 4096

// Table is a process-wide array of independent reader/writer locks,
// indexed by shard id. Its lifetime equals the cache instance's.
type Table struct {
	locks [Count]sync.RWMutex
}

// New allocates a lock table. The zero value would also work (arrays of
// sync.RWMutex are ready to use), but New documents the intent to
// allocate it exactly once per cache instance.
func New() *Table {
	return &Table{}
}

// RLock acquires a shared lock on shard id. Reads use this.
func (t *Table) RLock(id uint16) { t.locks[id].RLock() }

// RUnlock releases a shared lock on shard id.
func (t *Table) RUnlock(id uint16) { t.locks[id].RUnlock() }

// Lock acquires an exclusive lock on shard id. Writes and deletes use this.
func (t *Table) Lock(id uint16) { t.locks[id].Lock() }

// Unlock releases an exclusive lock on shard id.
func (t *Table) Unlock(id uint16) { t.locks[id].Unlock() }

// TryLock attempts a non-blocking exclusive acquisition of shard id.
// The janitor uses this so a contended (hot) shard is skipped rather
// than making the janitor — or anything behind it — wait.
func (t *Table) TryLock(id uint16) bool { return t.locks[id].TryLock() }
