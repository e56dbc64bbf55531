// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// weighted, directed graphs built from mazes.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from one source vertex to every
//     reachable vertex in O((V + E) log V), expanding vertices from a min-heap.
//   - With WithReturnPath the predecessor map keeps every predecessor that
//     ties for the minimum, so all equally short paths can be rebuilt.
//   - ShortestPath and AllShortestPaths wrap Dijkstra for a single
//     source/target pair and return Path values.
//
// Zero-weight edges are allowed (entering a Reward square with the default
// bonus costs 0), so two adjacent rewards form a zero-weight cycle. The
// predecessor map may therefore contain cycles; AllShortestPaths only emits
// simple paths by refusing to revisit a vertex already on the current path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each edge relaxation may push one heap entry (lazy decrease-key).
//   - Space: O(V + E)
//   - AllShortestPaths additionally costs O(P × L) for P paths of length L.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        Dijkstra called without Source.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrUnweightedGraph: graph not built with core.WithWeighted().
//   - ErrVertexNotFound:  source (or target) is not a vertex of the graph.
//   - ErrNegativeWeight:  an edge with negative weight (found by an O(E) pre-scan).
//   - ErrNoPath:          target is unreachable from source.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent runs on one graph are safe
//     as long as nobody mutates it.
package dijkstra
