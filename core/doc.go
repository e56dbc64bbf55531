// Package core defines the directed, weighted graph that mazes are solved on.
//
// Vertices are dense non-negative integers (maze square indices), so a vertex
// needs no separate record: the graph keeps a vertex set, an edge catalog and
// an outgoing adjacency list. Every edge is directed; an undirected corridor
// is modelled as two edges whose weights may differ.
//
// What:
//
//   - Graph: vertex set + edge catalog + adjacency, guarded by RW locks.
//   - Edge:  From → To with an int64 Weight.
//   - GraphOption: WithWeighted, WithLoops, WithMultiEdges.
//
// Determinism:
//
//   - Vertices() is sorted ascending.
//   - Neighbors(id) is sorted by (To, insertion order).
//   - Edges() is sorted by (From, To, insertion order).
//
// Errors:
//
//	ErrBadVertexID         - vertex ID is negative.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasEdge: O(1) amortized.
//   - Neighbors: O(d log d) for out-degree d.
//   - Vertices: O(V log V); Edges: O(E log E).
package core
