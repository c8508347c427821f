package cache

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/shardkeeper/filekv/internal/guard"
	"github.com/shardkeeper/filekv/internal/pathmap"
	"github.com/shardkeeper/filekv/internal/shardlock"
)

func logDefaultWriter() io.Writer { return os.Stderr }

// Keeper is the dispatcher: the user-facing façade over the worker
// pool, the shard lock table, the janitor, and the process guard. It
// assigns jobs to workers round-robin, attaches reply channels, and
// detects worker death so every job resolves in bounded time.
//
// Build one Keeper per cache root per process; the process guard
// enforces that no second Keeper can be built over the same root while
// this one is alive, in this process or any other.
type Keeper struct {
	root    string
	backend Backend
	locks   *shardlock.Table
	metrics Metrics
	logger  *log.Logger

	guard *guard.Guard

	workers []*worker
	next    atomic.Uint32

	janitor *janitor

	closed atomic.Bool
}

// Build constructs a Keeper: it ensures RootPath exists as a directory,
// acquires the process guard, allocates the fixed 4096-slot lock table,
// spawns Options.Workers workers, and starts the janitor on
// Options.CleanupInterval.
func Build(opt Options) (*Keeper, error) {
	opt = opt.withDefaults()

	if opt.RootPath == "" {
		return nil, fmt.Errorf("%w: RootPath is required", ErrInvalidConfig)
	}
	if info, err := os.Stat(opt.RootPath); err == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: RootPath %q is not a directory", ErrInvalidConfig, opt.RootPath)
		}
	} else if os.IsNotExist(err) {
		if err := os.MkdirAll(opt.RootPath, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create RootPath: %v", ErrInvalidConfig, err)
		}
	} else {
		return nil, fmt.Errorf("%w: stat RootPath: %v", ErrInvalidConfig, err)
	}

	g, err := guard.Acquire(opt.RootPath)
	if err != nil {
		if errors.Is(err, guard.ErrAlreadyHeld) {
			return nil, ErrAlreadyHeld
		}
		return nil, fmt.Errorf("keeper: acquire guard: %w", err)
	}
	opt.Logger.Info("guard acquired", "root", opt.RootPath)

	locks := shardlock.New()

	k := &Keeper{
		root:    opt.RootPath,
		backend: opt.Backend,
		locks:   locks,
		metrics: opt.Metrics,
		logger:  opt.Logger,
		guard:   g,
	}

	k.workers = make([]*worker, opt.Workers)
	for i := range k.workers {
		w := newWorker(i, opt.QueueSize, opt.Backend, locks, opt.Metrics, opt.Logger)
		k.workers[i] = w
		go w.run()
	}
	opt.Logger.Info("workers started", "count", opt.Workers)

	k.janitor = newJanitor(opt.RootPath, opt.CleanupInterval, opt.Backend, locks, opt.Metrics, opt.Logger)
	go k.janitor.run()

	return k, nil
}

// dispatch picks the next live worker round-robin and pushes j onto
// its queue. If every worker has died, the job is resolved with
// ErrWorkerGone immediately, without a channel round-trip.
func (k *Keeper) dispatch(j *job) {
	n := len(k.workers)
	for tries := 0; tries < n; tries++ {
		idx := int(k.next.Add(1)) % n
		w := k.workers[idx]
		if w.dead.Load() {
			continue
		}
		w.queue.Push(j)
		k.sampleQueueDepth()
		return
	}
	deliver(j.reply, Result{Err: ErrWorkerGone})
}

func (k *Keeper) sampleQueueDepth() {
	total := 0
	for _, w := range k.workers {
		total += w.queue.Len()
	}
	k.metrics.QueueDepth(total)
}

func (k *Keeper) newReply() chan Result { return make(chan Result, 1) }

// SetCh enqueues a set and returns its reply channel immediately.
func (k *Keeper) SetCh(key string, value []byte, ttl time.Duration) <-chan Result {
	reply := k.newReply()
	if k.closed.Load() {
		deliver(reply, Result{Err: ErrShutdown})
		return reply
	}
	m := pathmap.Map(k.root, key)
	k.dispatch(&job{kind: opSet, key: key, path: m.Path, shardID: m.ShardID, value: value, ttl: ttl, reply: reply})
	return reply
}

// GetCh enqueues a get and returns its reply channel immediately.
func (k *Keeper) GetCh(key string) <-chan Result {
	reply := k.newReply()
	if k.closed.Load() {
		deliver(reply, Result{Err: ErrShutdown})
		return reply
	}
	m := pathmap.Map(k.root, key)
	k.dispatch(&job{kind: opGet, key: key, path: m.Path, shardID: m.ShardID, reply: reply})
	return reply
}

// RemoveCh enqueues a remove and returns its reply channel immediately.
// Removing an absent key is a success, not a miss.
func (k *Keeper) RemoveCh(key string) <-chan Result {
	reply := k.newReply()
	if k.closed.Load() {
		deliver(reply, Result{Err: ErrShutdown})
		return reply
	}
	m := pathmap.Map(k.root, key)
	k.dispatch(&job{kind: opRemove, key: key, path: m.Path, shardID: m.ShardID, reply: reply})
	return reply
}

// ClearCh enqueues a Clear: every entry under the cache root is
// deleted; only the process guard's lock file is kept.
func (k *Keeper) ClearCh() <-chan Result {
	reply := k.newReply()
	if k.closed.Load() {
		deliver(reply, Result{Err: ErrShutdown})
		return reply
	}
	k.dispatch(&job{kind: opClear, path: k.root, reply: reply})
	return reply
}

// CleanupCh enqueues a synchronous, on-demand single-pass janitor sweep.
func (k *Keeper) CleanupCh() <-chan Result {
	reply := k.newReply()
	if k.closed.Load() {
		deliver(reply, Result{Err: ErrShutdown})
		return reply
	}
	k.dispatch(&job{kind: opCleanup, path: k.root, reply: reply})
	return reply
}

// Close stops accepting new jobs, drains every worker's queue, joins
// the workers and the janitor concurrently, and releases the process
// guard. It is safe to call Close more than once; only the first call
// does the work.
func (k *Keeper) Close() error {
	if !k.closed.CompareAndSwap(false, true) {
		return nil
	}
	k.logger.Info("shutting down")

	var g errgroup.Group
	for _, w := range k.workers {
		w := w
		g.Go(func() error {
			w.queue.Close()
			<-w.done
			return nil
		})
	}
	g.Go(func() error {
		k.janitor.Stop()
		return nil
	})
	_ = g.Wait()

	if err := k.guard.Release(); err != nil {
		return fmt.Errorf("keeper: release guard: %w", err)
	}
	return nil
}
