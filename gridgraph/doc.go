// Package gridgraph turns a maze.Maze into a weighted, directed *core.Graph.
//
// What:
//
//   - Nodes are the traversable squares (every role except Exterior and Wall),
//     keyed by square index. Isolated nodes are kept as vertices.
//   - From each node the builder looks right and down along the square's row
//     or column. A scan stops at the first square whose Right (or Bottom)
//     border is set, and links to the first node it meets. Non-node squares
//     in between are crossed without becoming vertices.
//   - Every link (a,b) is added in both directions. Each direction is weighed
//     on its own: the distance between the squares, minus Bonus when the
//     destination is a Reward, plus Penalty when it is an Enemy.
//
// Directed weights are intentionally asymmetric: entering a reward is cheap
// and entering an enemy is expensive, whichever way the corridor is walked.
//
// Options:
//
//   - WithBonus(b):   subtracted when entering a Reward (default 1, range 0..1).
//   - WithPenalty(p): added when entering an Enemy (default 2, must be ≥ 0).
//
// The ranges keep every edge weight non-negative, which Dijkstra requires.
//
// Complexity:
//
//   - Build: O(W×H×max(W,H)) worst case for long empty corridors,
//     O(W×H) for ordinary mazes. Memory: O(V + E).
//
// Errors:
//
//   - ErrNilMaze:    Build called with a nil maze.
//   - ErrBadBonus:   bonus outside 0..1.
//   - ErrBadPenalty: negative penalty.
package gridgraph
