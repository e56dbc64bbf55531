package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/core"
)

// Dijkstra computes shortest distances from the Source vertex to all other
// vertices in the weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.MaxInt64 if unreachable).
//   - prev: with WithReturnPath, vertex ID → every predecessor u such that
//     dist[u] + w(u,v) == dist[v], in discovery order; nil otherwise.
//     The source and unreachable vertices have no predecessors
//     unless zero-weight edges lead back into the source.
//   - err:  a sentinel error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[int]int64, map[int][]int, error) {
	// 1) Build Options
	var cfg Options
	for _, opt := range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	// 3) Validate graph is non-nil and weighted
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	// 4) Validate Source exists in the graph
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}

	// 5) Fail fast on negative weights before touching the heap
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 6) Prepare runner state
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]int64, n),
		prev:    make(map[int][]int, n),
		visited: make(map[int]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 7) Seed and drain the heap
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	// 8) Return results; prev only on request
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph   // read-only within Dijkstra
	options Options       // Source and flags
	dist    map[int]int64 // vertex → best distance from Source
	prev    map[int][]int // vertex → tying predecessors
	visited map[int]bool  // finalized vertices
	pq      nodePQ        // lazy min-heap
}

// init sets every distance to +∞, the source to 0, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unfinalized vertex until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's out-neighbors and records ties.
// Assumes r.dist[u] is final.
//
// Steps for each edge u→v:
//  1. Compute the candidate distance through u.
//  2. Strictly shorter: replace v's predecessors with u and push v.
//  3. Equal: keep the old predecessors and append u.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		// 1) Candidate distance through u
		v := e.To
		newDist := r.dist[u] + e.Weight

		switch {
		case newDist < r.dist[v]:
			// 2) Strict improvement: u is now the only predecessor
			r.dist[v] = newDist
			r.prev[v] = append(r.prev[v][:0], u)
			heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		case newDist == r.dist[v]:
			// 3) Equal cost: another shortest way into v. v may already be
			// finalized when the edge has zero weight.
			r.prev[v] = append(r.prev[v], u)
		}
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
