package cache

import (
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shardkeeper/filekv/internal/padding"
	"github.com/shardkeeper/filekv/internal/shardlock"
)

// worker owns one job queue and runs until told to stop or until a
// panic escapes the backend, at which point it marks itself dead and
// drains its own queue with ErrWorkerGone rather than waiting for a
// supervisor to notice.
type worker struct {
	id      int
	queue   *queue
	backend Backend
	locks   *shardlock.Table
	metrics Metrics
	logger  *log.Logger
	dead    atomic.Bool
	done    chan struct{}

	// processed is cache-line padded: every worker goroutine increments
	// its own counter on its own core on every job, and an unpadded
	// counter array would put neighboring workers' counters on the same
	// cache line, forcing needless cross-core invalidation traffic.
	processed padding.PaddedAtomicInt64
}

func newWorker(id int, bound int, backend Backend, locks *shardlock.Table, metrics Metrics, logger *log.Logger) *worker {
	return &worker{
		id:      id,
		queue:   newQueue(bound),
		backend: backend,
		locks:   locks,
		metrics: metrics,
		logger:  logger.With("worker", id),
		done:    make(chan struct{}),
	}
}

// run pops jobs until the queue is closed-and-drained or a panic is
// recovered. On panic it replies WorkerGone to the job in flight, marks
// itself dead, and drains the rest of the queue the same way, so every
// job already buffered for this worker still resolves in bounded time.
// This is ownership-based death signaling: the worker owns the
// producing end of its replies, so its own exit is what resolves them.
func (w *worker) run() {
	defer close(w.done)
	for {
		j, ok := w.queue.Pop()
		if !ok {
			return
		}
		if w.handleSafely(j) {
			continue
		}
		w.die()
		return
	}
}

// handleSafely executes j and recovers a panic from the backend or
// codec path, replying WorkerGone for j itself when one occurs. It
// returns false when a panic was recovered, signaling run to stop.
func (w *worker) handleSafely(j *job) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("worker panicked", "recovered", r)
			deliver(j.reply, Result{Err: ErrWorkerGone})
			ok = false
		}
	}()
	w.handle(j)
	w.processed.Add(1)
	return true
}

func (w *worker) handle(j *job) {
	now := time.Now()
	switch j.kind {
	case opGet:
		w.locks.RLock(j.shardID)
		value, found, err := w.backend.Read(j.path, now)
		w.locks.RUnlock(j.shardID)
		if err != nil {
			w.metrics.OpError("get")
			deliver(j.reply, Result{Err: err})
			return
		}
		if found {
			w.metrics.Hit()
		} else {
			w.metrics.Miss()
		}
		deliver(j.reply, Result{Value: value, Found: found})

	case opSet:
		dir := filepath.Dir(j.path)
		w.locks.Lock(j.shardID)
		err := w.backend.Write(dir, j.path, j.value, j.ttl, now)
		w.locks.Unlock(j.shardID)
		if err != nil {
			w.metrics.OpError("set")
		}
		deliver(j.reply, Result{Err: err})

	case opRemove:
		w.locks.Lock(j.shardID)
		err := w.backend.Remove(j.path)
		w.locks.Unlock(j.shardID)
		if err != nil {
			w.metrics.OpError("remove")
		}
		deliver(j.reply, Result{Err: err})

	case opClear:
		for id := 0; id < shardlock.Count; id++ {
			w.locks.Lock(uint16(id))
		}
		err := w.backend.Clear(j.path) // j.path carries root for this job kind
		for id := shardlock.Count - 1; id >= 0; id-- {
			w.locks.Unlock(uint16(id))
		}
		if err != nil {
			w.metrics.OpError("clear")
		}
		deliver(j.reply, Result{Err: err})

	case opCleanup:
		scanned, deleted, err := sweepOnce(w.backend, w.locks, j.path, now, true)
		w.metrics.JanitorTick(scanned, deleted)
		if err != nil {
			w.metrics.OpError("cleanup")
		}
		deliver(j.reply, Result{Err: err})
	}
}

// die marks the worker dead and drains every job still buffered in its
// queue with ErrWorkerGone. Future routing to this worker is skipped by
// the dispatcher once dead is observed true.
func (w *worker) die() {
	w.dead.Store(true)
	w.metrics.WorkerDeath()
	w.logger.Warn("worker died", "jobs processed", w.processed.Load())
	w.queue.Close()
	for {
		j, ok := w.queue.TryPop()
		if !ok {
			return
		}
		deliver(j.reply, Result{Err: ErrWorkerGone})
	}
}

