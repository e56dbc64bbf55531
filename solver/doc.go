// Package solver finds the cheapest routes from a maze's entrance to its exit.
//
// A Solver builds a fresh weighted graph for every call (see gridgraph),
// runs Dijkstra from the entrance and wraps the resulting vertex paths as
// maze.Solution values. A maze without a route is not an error: Solve
// returns nil and SolveAll returns an empty slice.
//
// Each call logs under its own run_id and, when a metrics.Registry is
// attached, records its outcome, duration and graph size.
package solver
