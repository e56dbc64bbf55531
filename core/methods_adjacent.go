// File: methods_adjacent.go
// Role: Neighborhood API.

package core

import "sort"

// Neighbors returns the outgoing edges of id, sorted by (To, insertion order).
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) for out-degree d.
// Notes: the returned edges are live catalog entries; treat them as read-only.
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	// Lock order matches mutators: muVert, then muEdgeAdj.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])
	sort.Slice(out, func(i, j int) bool { return edgeLess(out[i], out[j]) })

	return out, nil
}
