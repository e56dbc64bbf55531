package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvmaze/core"
)

// ShortestPath returns one minimum-cost path from source to target.
// Returns ErrNoPath when target is unreachable, ErrVertexNotFound when
// either endpoint is missing, or any error of Dijkstra.
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, source, target int) (Path, error) {
	dist, prev, err := search(g, source, target)
	if err != nil {
		return Path{}, err
	}

	// The first recorded predecessor is the one that set the final
	// distance; it was finalized earlier, so following it terminates.
	vertices := []int{target}
	for v := target; v != source; {
		v = prev[v][0]
		vertices = append(vertices, v)
	}
	slices.Reverse(vertices)

	return Path{Vertices: vertices, Cost: dist[target]}, nil
}

// AllShortestPaths returns every simple path from source to target whose
// cost equals the minimum, ordered lexicographically by vertex sequence.
//
// Steps:
//  1. Run Dijkstra with predecessors.
//  2. Walk the predecessor lists backwards from target, depth first,
//     skipping vertices already on the current path.
//  3. Emit each walk that reaches source, reversed.
//  4. Sort the paths.
//
// Errors as ShortestPath.
// Complexity: O((V + E) log V) plus the size of the output.
func AllShortestPaths(g *core.Graph, source, target int) ([]Path, error) {
	// 1) Distances and tying predecessors
	dist, prev, err := search(g, source, target)
	if err != nil {
		return nil, err
	}

	// 2) Depth-first walk over predecessors; onPath keeps paths simple
	// when zero-weight edges make the predecessor graph cyclic.
	var out []Path
	onPath := map[int]bool{target: true}
	stack := []int{target}

	var walk func(v int)
	walk = func(v int) {
		if v == source { // 3) complete path, stored source-first
			vertices := slices.Clone(stack)
			slices.Reverse(vertices)
			out = append(out, Path{Vertices: vertices, Cost: dist[target]})
			return
		}
		for _, u := range prev[v] {
			if onPath[u] {
				continue
			}
			onPath[u] = true
			stack = append(stack, u)
			walk(u)
			stack = stack[:len(stack)-1]
			onPath[u] = false
		}
	}
	walk(target)

	// 4) Deterministic order
	slices.SortFunc(out, func(a, b Path) int { return slices.Compare(a.Vertices, b.Vertices) })

	return out, nil
}

// search runs Dijkstra from source and checks that target is reachable.
func search(g *core.Graph, source, target int) (map[int]int64, map[int][]int, error) {
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return nil, nil, err
	}
	d, ok := dist[target]
	if !ok {
		return nil, nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	if d == math.MaxInt64 {
		return nil, nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
	}

	return dist, prev, nil
}
