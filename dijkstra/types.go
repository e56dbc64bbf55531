package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Dijkstra was called without a Source option.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path between source and target")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source     int  // The ID of the source vertex
	HasSource  bool // Whether Source was set
	ReturnPath bool // Whether to return the predecessor map
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// Path is one route through the graph and its total weight.
type Path struct {
	Vertices []int
	Cost     int64
}
