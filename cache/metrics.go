package cache

// Metrics exposes cache-level observability hooks. A NoopMetrics
// implementation is provided and used by default; plug metrics/prom for
// a Prometheus-backed implementation.
type Metrics interface {
	// Hit/Miss count Get outcomes.
	Hit()
	Miss()
	// OpError counts an Io failure, labeled by the operation kind that
	// failed ("get", "set", "remove", "clear", "cleanup").
	OpError(kind string)
	// WorkerDeath counts a worker that terminated abnormally.
	WorkerDeath()
	// QueueDepth reports the current sum of buffered jobs across all
	// worker queues, sampled on each enqueue.
	QueueDepth(n int)
	// JanitorTick reports how many files a single janitor pass
	// inspected and deleted.
	JanitorTick(scanned, deleted int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is safe for concurrent use and intended as the default when no
// observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                             {}
func (NoopMetrics) Miss()                            {}
func (NoopMetrics) OpError(string)                   {}
func (NoopMetrics) WorkerDeath()                     {}
func (NoopMetrics) QueueDepth(int)                   {}
func (NoopMetrics) JanitorTick(scanned, deleted int) {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
