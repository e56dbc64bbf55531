// Command mazesolve loads a maze file and prints its cheapest routes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/internal/cli"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/mazefile"
	"github.com/katalvlaran/lvmaze/metrics"
	"github.com/katalvlaran/lvmaze/solver"
)

// main is the entrypoint for the mazesolve command.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the command logic; outW receives solutions, errW logs,
// usage text and metrics.
func run(outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	logger := config.NewLogger(cfg.Log, errW)
	reg := metrics.NewRegistry()

	m, err := mazefile.Load(opts.MazePath)
	if err != nil {
		reg.RecordMazeFile("load", err, 0)
		return err
	}
	reg.RecordMazeFile("load", nil, mazefile.HeaderSize+m.Len())
	logger.Debug("maze loaded", "path", opts.MazePath, "width", m.Width(), "height", m.Height())

	s, err := solver.New(
		solver.WithConfig(cfg.Weights),
		solver.WithLogger(logger),
		solver.WithMetrics(reg),
	)
	if err != nil {
		return err
	}

	var solutions []*maze.Solution
	if opts.One {
		sol, err := s.Solve(m)
		if err != nil {
			return err
		}
		if sol != nil {
			solutions = append(solutions, sol)
		}
	} else {
		solutions, err = s.SolveAll(m)
		if err != nil {
			return err
		}
	}

	printSolutions(outW, s, solutions)

	if opts.Metrics {
		return reg.WriteText(errW)
	}
	return nil
}

func printSolutions(w io.Writer, s *solver.Solver, solutions []*maze.Solution) {
	if len(solutions) == 0 {
		fmt.Fprintln(w, "No solution found")
		return
	}
	for i, sol := range solutions {
		idx := sol.Indices()
		parts := make([]string, len(idx))
		for j, v := range idx {
			parts[j] = strconv.Itoa(v)
		}
		fmt.Fprintf(w, "solution %d (cost %d): %s\n", i+1, s.Cost(sol), strings.Join(parts, " "))
	}
}

