// Package metrics exposes Prometheus collectors for maze solving and maze
// file activity. Every Registry owns a private prometheus.Registry so
// independent solvers and tests never collide on collector names.
package metrics

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Result labels.
const (
	ResultFound = "found"
	ResultNone  = "none"
	ResultError = "error"
)

// Registry holds all metrics for the application
type Registry struct {
	// Solver Metrics
	SolvesTotal    *prometheus.CounterVec
	SolveDuration  *prometheus.HistogramVec
	GraphNodes     prometheus.Histogram
	GraphEdges     prometheus.Histogram
	SolutionsFound prometheus.Histogram

	// Maze file Metrics
	MazeFileOperationsTotal *prometheus.CounterVec
	MazeFileBytes           *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry. Solvers record into
// it unless given their own Registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initSolverMetrics()
	r.initMazeFileMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordSolve records one solve call: its operation ("solve" or
// "solve_all"), outcome, duration and the number of solutions returned.
func (r *Registry) RecordSolve(operation, result string, duration time.Duration, solutions int) {
	r.SolvesTotal.WithLabelValues(operation, result).Inc()
	r.SolveDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if result != ResultError {
		r.SolutionsFound.Observe(float64(solutions))
	}
}

// RecordGraph records the size of a graph built for a solve.
func (r *Registry) RecordGraph(nodes, edges int) {
	r.GraphNodes.Observe(float64(nodes))
	r.GraphEdges.Observe(float64(edges))
}

// RecordMazeFile records a maze file load or dump.
func (r *Registry) RecordMazeFile(operation string, err error, size int) {
	status := "ok"
	if err != nil {
		status = ResultError
	}
	r.MazeFileOperationsTotal.WithLabelValues(operation, status).Inc()
	if err == nil {
		r.MazeFileBytes.WithLabelValues(operation).Observe(float64(size))
	}
}

// WriteText writes every gathered metric family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
