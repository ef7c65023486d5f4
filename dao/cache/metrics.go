package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skyline_cache_hits_total",
		Help: "Read-through cache hits.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skyline_cache_misses_total",
		Help: "Read-through cache misses.",
	})
	cacheErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skyline_cache_errors_total",
		Help: "Cache operations that failed and were degraded.",
	}, []string{"op"})
)
