package cache

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shardkeeper/filekv/internal/pathmap"
	"github.com/shardkeeper/filekv/internal/shardlock"
)

// janitor round-robins all 4096 shards on its own timer, never through
// the worker pool, taking only non-blocking exclusive locks so it never
// introduces latency on a hot shard — a contended shard is simply
// skipped and revisited on the next tick.
type janitor struct {
	root    string
	backend Backend
	locks   *shardlock.Table
	metrics Metrics
	logger  *log.Logger

	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func newJanitor(root string, interval time.Duration, backend Backend, locks *shardlock.Table, metrics Metrics, logger *log.Logger) *janitor {
	return &janitor{
		root:     root,
		backend:  backend,
		locks:    locks,
		metrics:  metrics,
		logger:   logger.With("component", "janitor"),
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (jn *janitor) run() {
	defer close(jn.done)
	ticker := time.NewTicker(jn.interval)
	defer ticker.Stop()
	for {
		select {
		case <-jn.stop:
			return
		case now := <-ticker.C:
			scanned, deleted, err := sweepOnce(jn.backend, jn.locks, jn.root, now, false)
			jn.metrics.JanitorTick(scanned, deleted)
			if err != nil {
				jn.logger.Error("sweep failed", "err", err)
				continue
			}
			if deleted > 0 {
				jn.logger.Info("tick complete", "scanned", scanned, "deleted", deleted)
			} else {
				jn.logger.Debug("tick complete", "scanned", scanned, "deleted", deleted)
			}
		}
	}
}

// Stop signals the janitor to exit and waits for it to do so.
func (jn *janitor) Stop() {
	close(jn.stop)
	<-jn.done
}

// sweepOnce performs one pass over all 4096 shards, deleting expired
// files in every shard it can acquire a non-blocking exclusive lock on.
// When exhaustive is true (the explicit Cleanup() call), a shard that
// was contended on the first attempt is retried a bounded number of
// times before being given up on, since an explicit caller wants a real
// sweep rather than a best-effort one.
func sweepOnce(backend Backend, locks *shardlock.Table, root string, now time.Time, exhaustive bool) (scanned, deleted int, err error) {
	const maxRetries = 3
	for id := 0; id < shardlock.Count; id++ {
		shardID := uint16(id)
		attempts := 1
		if exhaustive {
			attempts = maxRetries
		}
		for attempt := 0; attempt < attempts; attempt++ {
			if !locks.TryLock(shardID) {
				continue
			}
			dir := filepath.Join(root, pathmap.ShardHex(shardID))
			s, d, scanErr := scanShard(backend, dir, now)
			locks.Unlock(shardID)
			scanned += s
			deleted += d
			if scanErr != nil {
				err = scanErr
			}
			break
		}
	}
	return scanned, deleted, err
}

func scanShard(backend Backend, dir string, now time.Time) (scanned, deleted int, err error) {
	paths, err := backend.ScanShard(dir)
	if err != nil {
		return 0, 0, err
	}
	for _, p := range paths {
		scanned++
		_, found, readErr := backend.Read(p, now)
		if readErr != nil {
			continue
		}
		if found {
			continue
		}
		if rmErr := backend.Remove(p); rmErr == nil {
			deleted++
		}
	}
	return scanned, deleted, nil
}
