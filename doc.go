// Package lvmaze models rectangular mazes, stores them in a compact binary
// file format and finds their cheapest routes.
//
// What is inside:
//
//	maze/       - Border, Role, Square, Maze and Solution, with grid invariants
//	mazefile/   - the "MAZE" binary codec, Load and Dump
//	core/       - thread-safe weighted directed graph keyed by square index
//	gridgraph/  - Maze → graph: corridor scanning and role-based weights
//	dijkstra/   - shortest paths with every tying predecessor
//	solver/     - Solve / SolveAll on a Maze, with logging and metrics
//	config/     - YAML configuration, validation and slog setup
//	metrics/    - Prometheus collectors for solves and maze files
//	cmd/mazesolve - batch command printing the routes of a .maze file
//
// Weights are directed: entering a Reward square is one step cheaper,
// entering an Enemy square two steps dearer, whatever the direction of
// travel. A maze without a route is not an error; Solve returns nil.
//
// Quick ASCII example (entrance E, exit X, wall ▓):
//
//	E───1───2
//	│   ▓   │
//	3   ▓   5
//	│       │
//	6───7───X
//
// has two routes of cost 4; a reward on 2 makes the upper one cost 3.
//
//	go install github.com/katalvlaran/lvmaze/cmd/mazesolve@latest
package lvmaze
