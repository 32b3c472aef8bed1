// Package metrics registers the engine's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RankDuration observes end-to-end ranking latency in seconds.
	RankDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ranking",
		Name:      "request_duration_seconds",
		Help:      "Time to produce a ranking, cache misses only.",
		Buckets:   prometheus.DefBuckets,
	})

	// ScorerDegraded counts scorers that timed out or failed, by scorer name.
	ScorerDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ranking",
		Name:      "scorer_degraded_total",
		Help:      "Scoring signals dropped from a ranking due to timeout or collaborator failure.",
	}, []string{"scorer"})

	// CacheHits and CacheMisses count full-ranking cache lookups.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ranking",
		Name:      "cache_hits_total",
		Help:      "Ranking requests served from the cached full ordering.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ranking",
		Name:      "cache_misses_total",
		Help:      "Ranking requests that recomputed the full ordering.",
	})
)
