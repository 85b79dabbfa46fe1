// Package metrics exposes dashboard counters in Prometheus format.
//
// A Metrics value owns its registry, so tests and multiple servers in one
// process do not collide on the global default registerer. All methods are
// safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fraud_monitor"

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics records dataset generation and cache activity.
type Metrics struct {
	registry   *prometheus.Registry
	generated  *prometheus.CounterVec
	flagged    *prometheus.CounterVec
	cache      *prometheus.CounterVec
	generation prometheus.Histogram
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_generated_total",
			Help:      "Synthetic transactions generated, by labeling rule.",
		}, []string{"rule"}),
		flagged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_flagged_total",
			Help:      "Generated transactions labeled as suspicious, by labeling rule.",
		}, []string{"rule"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_cache_lookups_total",
			Help:      "Dataset cache lookups by result.",
		}, []string{"result"}),
		generation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating one dataset.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
	}

	m.registry.MustRegister(
		m.generated,
		m.flagged,
		m.cache,
		m.generation,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveGeneration records one generated dataset.
func (m *Metrics) ObserveGeneration(rule string, total, flagged int, took time.Duration) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(rule).Add(float64(total))
	m.flagged.WithLabelValues(rule).Add(float64(flagged))
	m.generation.Observe(took.Seconds())
}

// ObserveCache records the outcome of a cache lookup.
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cache.WithLabelValues(result).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
