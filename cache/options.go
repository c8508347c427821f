package cache

import (
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a Keeper. RootPath is the only required field.
// Zero values for everything else are safe; Build applies the defaults
// documented per field below.
type Options struct {
	// RootPath is the cache root directory. It must exist (as a
	// directory) or be creatable; Build rejects a path that exists and
	// is a regular file with ErrInvalidConfig.
	RootPath string

	// CleanupInterval is the wall-clock period between janitor ticks.
	// Zero defaults to 30 seconds.
	CleanupInterval time.Duration

	// Workers is the number of worker goroutines in the pool. Zero or
	// negative defaults to 4.
	Workers int

	// QueueSize bounds each worker's job queue. Zero or negative means
	// unbounded, leaving backpressure to the caller's own concurrency
	// model.
	QueueSize int

	// Backend overrides the I/O primitives (Read/Write/Remove/Scan).
	// Nil defaults to the real filesystem backend. Tests substitute a
	// backend that panics on demand to exercise worker-death handling
	// without needing to kill an actual OS thread.
	Backend Backend

	// Metrics receives Hit/Miss/OpError/WorkerDeath/QueueDepth/
	// JanitorTick signals. Nil defaults to NoopMetrics.
	Metrics Metrics

	// Logger receives structured lifecycle events (guard acquired,
	// workers started, worker death, janitor tick, shutdown). Nil
	// defaults to a logger writing to os.Stderr at Info level.
	Logger *log.Logger
}

const (
	defaultCleanupInterval = 30 * time.Second
	defaultWorkers         = 4
)

func (o Options) withDefaults() Options {
	if o.CleanupInterval <= 0 {
		o.CleanupInterval = defaultCleanupInterval
	}
	if o.Workers <= 0 {
		o.Workers = defaultWorkers
	}
	if o.Backend == nil {
		o.Backend = NewFSBackend()
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(logDefaultWriter(), log.Options{
			ReportTimestamp: true,
			Prefix:          "keeper",
		})
	}
	return o
}

// Builder offers a fluent alternative to the Options struct literal.
// Either path reaches the same Build.
type Builder struct {
	opt Options
}

// NewBuilder starts a Builder for the cache rooted at rootPath.
func NewBuilder(rootPath string) *Builder {
	return &Builder{opt: Options{RootPath: rootPath}}
}

func (b *Builder) WithCleanupInterval(d time.Duration) *Builder {
	b.opt.CleanupInterval = d
	return b
}

func (b *Builder) WithWorkers(n int) *Builder {
	b.opt.Workers = n
	return b
}

func (b *Builder) WithQueueSize(n int) *Builder {
	b.opt.QueueSize = n
	return b
}

func (b *Builder) WithBackend(backend Backend) *Builder {
	b.opt.Backend = backend
	return b
}

func (b *Builder) WithMetrics(m Metrics) *Builder {
	b.opt.Metrics = m
	return b
}

func (b *Builder) WithLogger(l *log.Logger) *Builder {
	b.opt.Logger = l
	return b
}

// Build constructs the Keeper described by the builder so far.
func (b *Builder) Build() (*Keeper, error) {
	return Build(b.opt)
}
