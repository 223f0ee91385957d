package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packages_cache_invalidations_total",
			Help: "Total number of cache invalidations by reason",
		},
		[]string{"reason"},
	)

	CacheLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packages_cache_loads_total",
			Help: "Total number of cache load attempts",
		},
		[]string{"outcome"},
	)
)
