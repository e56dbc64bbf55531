// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To, insertion order).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, after endpoints are ensured under muVert.

package core

import "sort"

// AddEdge creates a directed edge from → to, adding missing endpoints.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj and check the multi-edge constraint.
//  4. Store the edge and link it into adjacency.
//
// Errors: ErrBadVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(d) for the multi-edge check on the out-degree d of from.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Validate IDs, weight and loops
	if from < 0 || to < 0 {
		return ErrBadVertexID
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti { // multi-edge existence check
		for _, e := range g.adjacency[from] {
			if e.To == to {
				return ErrMultiEdgeNotAllowed
			}
		}
	}

	// 4) Store and link adjacency; seq keeps insertion order for Edges()
	g.nextSeq++
	e := &Edge{From: from, To: to, Weight: weight, seq: g.nextSeq}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)

	return nil
}

// HasEdge reports whether at least one edge from → to exists.
func (g *Graph) HasEdge(from, to int) bool {
	_, err := g.GetEdge(from, to)

	return err == nil
}

// GetEdge returns the first edge from → to, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(from, to int) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e, nil
		}
	}

	return nil, ErrEdgeNotFound
}

// Edges returns all edges sorted by (From, To, insertion order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i], out[j]) })

	return out
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func edgeLess(a, b *Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}
	return a.seq < b.seq
}
