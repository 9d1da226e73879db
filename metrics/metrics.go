// Package metrics exposes the Prometheus instrumentation for the
// strategy engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fantacontratti"

type Metrics struct {
	registry *prometheus.Registry

	SavesTotal     *prometheus.CounterVec // status: ok|error
	LoadsTotal     *prometheus.CounterVec // status: ok|error
	DebounceArmed  prometheus.Counter
	CategoryWrites *prometheus.CounterVec // status: ok|error
	DirtyDrafts    prometheus.Gauge
	PlayersCached  prometheus.Gauge
	SaveLatency    prometheus.Histogram
}

// New builds the metric set on its own registry so tests never collide
// with the default registerer.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		SavesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strategy_saves_total",
			Help:      "Strategy flushes sent to the write endpoint, by result.",
		}, []string{"status"}),
		LoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strategy_loads_total",
			Help:      "Player collection loads, by result.",
		}, []string{"status"}),
		DebounceArmed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "debounce_armed_total",
			Help:      "Debounce timers armed or re-armed by edits.",
		}),
		CategoryWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_writes_total",
			Help:      "Immediate watchlist category writes, by result.",
		}, []string{"status"}),
		DirtyDrafts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dirty_drafts",
			Help:      "Drafts with edits not yet confirmed by the server.",
		}),
		PlayersCached: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players_cached",
			Help:      "Players currently held in the read-model cache.",
		}),
		SaveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "strategy_save_seconds",
			Help:      "Latency of strategy-write calls.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Handler serves this metric set, suitable for mounting at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
