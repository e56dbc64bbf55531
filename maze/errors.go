package maze

import (
	"errors"
	"fmt"
)

// ErrGridInvariant is wrapped by every Maze or Solution construction failure.
// Use errors.Is(err, ErrGridInvariant) to detect structurally invalid grids.
var ErrGridInvariant = errors.New("maze: grid invariant violated")

// Specific causes, always reported together with ErrGridInvariant.
var (
	// ErrEmptyMaze indicates a Maze built from zero squares.
	ErrEmptyMaze = errors.New("maze: no squares")
	// ErrIndexOrder indicates squares[i].Index != i.
	ErrIndexOrder = errors.New("maze: wrong square index")
	// ErrRowColumn indicates a square whose row or column disagrees with its index.
	ErrRowColumn = errors.New("maze: wrong square row or column")
	// ErrNotRectangular indicates len(squares) != width*height.
	ErrNotRectangular = errors.New("maze: squares do not fill a rectangle")
	// ErrEntranceCount indicates zero or several Entrance squares.
	ErrEntranceCount = errors.New("maze: must be exactly one entrance")
	// ErrExitCount indicates zero or several Exit squares.
	ErrExitCount = errors.New("maze: must be exactly one exit")
	// ErrInvalidRole indicates a role value outside the defined set.
	ErrInvalidRole = errors.New("maze: undefined role")

	// ErrEmptySolution indicates a Solution without squares.
	ErrEmptySolution = errors.New("maze: solution has no squares")
	// ErrSolutionStart indicates a Solution that does not start at an Entrance.
	ErrSolutionStart = errors.New("maze: solution must start at the entrance")
	// ErrSolutionEnd indicates a Solution that does not end at an Exit.
	ErrSolutionEnd = errors.New("maze: solution must end at the exit")
	// ErrSolutionCorridor indicates consecutive squares sharing neither row nor column.
	ErrSolutionCorridor = errors.New("maze: squares must lie in the same row or column")
)

// violation reports cause wrapped together with ErrGridInvariant.
func violation(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrGridInvariant, cause}, args...)...)
}
