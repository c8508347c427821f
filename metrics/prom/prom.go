// Package prom adapts cache.Metrics onto Prometheus counters and
// gauges.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shardkeeper/filekv/cache"
)

// Adapter implements cache.Metrics and exports Prometheus counters and
// gauges. Safe for concurrent use; all Prometheus metric types are
// goroutine-safe.
type Adapter struct {
	hits         prometheus.Counter
	misses       prometheus.Counter
	opErrors     *prometheus.CounterVec
	workerDeaths prometheus.Counter
	queueDepth   prometheus.Gauge
	janitorScans prometheus.Counter
	janitorDels  prometheus.Counter
}

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Get calls that found a live entry",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Get calls that found no live entry",
			ConstLabels: constLabels,
		}),
		opErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "op_errors_total",
			Help:        "I/O errors by operation kind",
			ConstLabels: constLabels,
		}, []string{"op"}),
		workerDeaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "worker_deaths_total",
			Help:        "Workers that terminated abnormally",
			ConstLabels: constLabels,
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "queue_depth",
			Help:        "Sum of buffered jobs across all worker queues, sampled on enqueue",
			ConstLabels: constLabels,
		}),
		janitorScans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "janitor_scanned_total",
			Help:        "Files inspected by the janitor",
			ConstLabels: constLabels,
		}),
		janitorDels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "janitor_deleted_total",
			Help:        "Files deleted by the janitor",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.opErrors, a.workerDeaths, a.queueDepth, a.janitorScans, a.janitorDels)
	return a
}

func (a *Adapter) Hit()  { a.hits.Inc() }
func (a *Adapter) Miss() { a.misses.Inc() }

func (a *Adapter) OpError(kind string) { a.opErrors.WithLabelValues(kind).Inc() }

func (a *Adapter) WorkerDeath() { a.workerDeaths.Inc() }

func (a *Adapter) QueueDepth(n int) { a.queueDepth.Set(float64(n)) }

func (a *Adapter) JanitorTick(scanned, deleted int) {
	a.janitorScans.Add(float64(scanned))
	a.janitorDels.Add(float64(deleted))
}

// Compile-time check: ensure Adapter implements cache.Metrics.
var _ cache.Metrics = (*Adapter)(nil)
