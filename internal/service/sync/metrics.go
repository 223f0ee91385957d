package sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SyncFlushesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sync_flushes_total",
		Help: "Total number of sync flush attempts by outcome",
	},
	[]string{"outcome"},
)
