package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/metrics"
)

// Operation names used in logs and metrics.
const (
	OpSolve    = "solve"
	OpSolveAll = "solve_all"
)

// Solver solves mazes with a fixed weight configuration.
// It is safe for concurrent use.
type Solver struct {
	weights gridgraph.Options
	log     *slog.Logger
	metrics *metrics.Registry
}

// Option configures a Solver.
type Option func(*Solver)

// WithBonus sets the cost reduction for entering a Reward square.
func WithBonus(bonus int64) Option {
	return func(s *Solver) { s.weights.Bonus = bonus }
}

// WithPenalty sets the extra cost for entering an Enemy square.
func WithPenalty(penalty int64) Option {
	return func(s *Solver) { s.weights.Penalty = penalty }
}

// WithConfig applies both weights from a configuration file.
func WithConfig(w config.Weights) Option {
	return func(s *Solver) {
		s.weights = gridgraph.Options{Bonus: w.Bonus, Penalty: w.Penalty}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(s *Solver) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics records every call into r instead of metrics.DefaultRegistry.
func WithMetrics(r *metrics.Registry) Option {
	return func(s *Solver) {
		if r != nil {
			s.metrics = r
		}
	}
}

// New returns a Solver. It fails with gridgraph.ErrBadBonus or
// gridgraph.ErrBadPenalty when the weights could go negative.
func New(opts ...Option) (*Solver, error) {
	s := &Solver{
		weights: gridgraph.DefaultOptions(),
		log:     slog.New(slog.DiscardHandler),
		metrics: metrics.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.weights.Validate(); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	return s, nil
}

// Solve returns one cheapest route, or nil when the exit is unreachable.
func (s *Solver) Solve(m *maze.Maze) (*maze.Solution, error) {
	r, err := s.begin(m, OpSolve)
	if err != nil {
		return nil, err
	}

	p, err := dijkstra.ShortestPath(r.graph, m.Entrance().Index, m.Exit().Index)
	if err != nil {
		return nil, r.finishErr(err)
	}

	sol, err := toSolution(m, p)
	if err != nil {
		return nil, r.finishErr(err)
	}
	r.finish(p.Cost, 1)
	return sol, nil
}

// SolveAll returns every route tying for the minimum cost, ordered by
// their square indices. The result is empty, not nil, when the exit is
// unreachable.
func (s *Solver) SolveAll(m *maze.Maze) ([]*maze.Solution, error) {
	r, err := s.begin(m, OpSolveAll)
	if err != nil {
		return nil, err
	}

	paths, err := dijkstra.AllShortestPaths(r.graph, m.Entrance().Index, m.Exit().Index)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return []*maze.Solution{}, r.finishErr(err)
		}
		return nil, r.finishErr(err)
	}

	out := make([]*maze.Solution, 0, len(paths))
	for _, p := range paths {
		sol, err := toSolution(m, p)
		if err != nil {
			return nil, r.finishErr(err)
		}
		out = append(out, sol)
	}
	r.finish(paths[0].Cost, len(out))
	return out, nil
}

// Cost returns the total weight of sol under the Solver's weights.
func (s *Solver) Cost(sol *maze.Solution) int64 {
	var total int64
	for i := 1; i < sol.Len(); i++ {
		total += gridgraph.Weight(sol.At(i-1), sol.At(i), s.weights)
	}
	return total
}

// run tracks one Solve or SolveAll call.
type run struct {
	s     *Solver
	op    string
	log   *slog.Logger
	start time.Time
	graph *core.Graph
}

func (s *Solver) begin(m *maze.Maze, op string) (*run, error) {
	if m == nil {
		return nil, gridgraph.ErrNilMaze
	}
	r := &run{
		s:     s,
		op:    op,
		start: time.Now(),
		log: s.log.With(
			slog.String("run_id", uuid.NewString()),
			slog.String("op", op),
			slog.Int("width", m.Width()),
			slog.Int("height", m.Height()),
		),
	}

	g, err := gridgraph.Build(m, gridgraph.WithBonus(s.weights.Bonus), gridgraph.WithPenalty(s.weights.Penalty))
	if err != nil {
		return nil, r.finishErr(err)
	}
	r.graph = g

	st := g.Stats()
	r.log.Debug("graph built", "nodes", st.VertexCount, "edges", st.EdgeCount)
	s.metrics.RecordGraph(st.VertexCount, st.EdgeCount)
	return r, nil
}

func (r *run) finish(cost int64, solutions int) {
	elapsed := time.Since(r.start)
	r.log.Info("solved", "cost", cost, "solutions", solutions, "elapsed", elapsed)
	r.s.metrics.RecordSolve(r.op, metrics.ResultFound, elapsed, solutions)
}

// finishErr records err and returns it. dijkstra.ErrNoPath is recorded as
// a no-solution outcome and turned into a nil error.
func (r *run) finishErr(err error) error {
	elapsed := time.Since(r.start)
	if errors.Is(err, dijkstra.ErrNoPath) {
		r.log.Info("no solution", "elapsed", elapsed)
		r.s.metrics.RecordSolve(r.op, metrics.ResultNone, elapsed, 0)
		return nil
	}

	r.log.Error("solve failed", "error", err)
	r.s.metrics.RecordSolve(r.op, metrics.ResultError, elapsed, 0)
	return fmt.Errorf("solver: %s: %w", r.op, err)
}

// toSolution maps vertex IDs back to squares.
func toSolution(m *maze.Maze, p dijkstra.Path) (*maze.Solution, error) {
	squares := make([]maze.Square, len(p.Vertices))
	for i, id := range p.Vertices {
		squares[i] = m.At(id)
	}
	return maze.NewSolution(squares)
}

// Solve solves m with the default weights.
func Solve(m *maze.Maze) (*maze.Solution, error) {
	s, err := New()
	if err != nil {
		return nil, err
	}
	return s.Solve(m)
}

// SolveAll returns every cheapest route of m with the default weights.
func SolveAll(m *maze.Maze) ([]*maze.Solution, error) {
	s, err := New()
	if err != nil {
		return nil, err
	}
	return s.SolveAll(m)
}
