package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/maze"
)

// Build converts m into a weighted directed graph keyed by square index.
// Returns ErrNilMaze, ErrBadBonus or ErrBadPenalty.
// Complexity: see package doc.
func Build(m *maze.Maze, opts ...Option) (*core.Graph, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithWeighted())
	for _, sq := range Nodes(m) {
		if err := g.AddVertex(sq.Index); err != nil {
			return nil, err
		}
	}
	for _, e := range CandidateEdges(m) {
		if err := g.AddEdge(e.From.Index, e.To.Index, Weight(e.From, e.To, o)); err != nil {
			return nil, err
		}
		if err := g.AddEdge(e.To.Index, e.From.Index, Weight(e.To, e.From, o)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Nodes returns the traversable squares of m in index order.
// Complexity: O(W×H).
func Nodes(m *maze.Maze) []maze.Square {
	out := make([]maze.Square, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		if sq := m.At(i); sq.Role.Traversable() {
			out = append(out, sq)
		}
	}

	return out
}

// CandidateEdges returns the undirected links of m: for each node in index
// order, the nearest node to its right, then the nearest node below it.
func CandidateEdges(m *maze.Maze) []Edge {
	var out []Edge
	for _, sq := range Nodes(m) {
		if to, ok := scan(m, sq, 0, 1, maze.Right); ok {
			out = append(out, Edge{From: sq, To: to})
		}
		if to, ok := scan(m, sq, 1, 0, maze.Bottom); ok {
			out = append(out, Edge{From: sq, To: to})
		}
	}

	return out
}

// scan walks from sq by (dRow, dCol) until a square with the blocking border
// stops it or a node is reached.
func scan(m *maze.Maze, sq maze.Square, dRow, dCol int, blocking maze.Border) (maze.Square, bool) {
	cur := sq
	for {
		if cur.Border.Has(blocking) {
			return maze.Square{}, false
		}
		row, col := cur.Row+dRow, cur.Column+dCol
		if row >= m.Height() || col >= m.Width() {
			return maze.Square{}, false
		}
		cur = m.AtPosition(row, col)
		if cur.Role.Traversable() {
			return cur, true
		}
	}
}

// Weight returns the cost of moving from a to b: the Euclidean distance of
// their (row, column) positions, rounded, adjusted by b's role.
// Complexity: O(1).
func Weight(a, b maze.Square, o Options) int64 {
	w := int64(math.Round(math.Hypot(float64(b.Row-a.Row), float64(b.Column-a.Column))))
	switch b.Role {
	case maze.Reward:
		w -= o.Bonus
	case maze.Enemy:
		w += o.Penalty
	}

	return w
}
