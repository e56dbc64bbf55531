package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initMazeFileMetrics() {
	r.MazeFileOperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvmaze_mazefile_operations_total",
			Help: "Total number of maze file loads and dumps",
		},
		[]string{"operation", "status"},
	)

	r.MazeFileBytes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvmaze_mazefile_bytes",
			Help:    "Size of maze files read or written, in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		},
		[]string{"operation"},
	)
}
