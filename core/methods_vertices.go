// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Vertex set protected by muVert.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrBadVertexID for a negative id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrBadVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.muVert.RUnlock()
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
