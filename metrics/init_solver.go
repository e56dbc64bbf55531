package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSolverMetrics() {
	r.SolvesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvmaze_solves_total",
			Help: "Total number of maze solve calls",
		},
		[]string{"operation", "result"},
	)

	r.SolveDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvmaze_solve_duration_seconds",
			Help:    "Maze solve duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"operation"},
	)

	r.GraphNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvmaze_graph_nodes",
			Help:    "Number of nodes in graphs built from mazes",
			Buckets: prometheus.ExponentialBuckets(10, 10, 6),
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvmaze_graph_edges",
			Help:    "Number of directed edges in graphs built from mazes",
			Buckets: prometheus.ExponentialBuckets(10, 10, 6),
		},
	)

	r.SolutionsFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvmaze_solutions_found",
			Help:    "Number of solutions returned per solve call",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 64},
		},
	)
}
