package gridgraph

import "errors"

var (
	// ErrNilMaze indicates Build was given a nil maze.
	ErrNilMaze = errors.New("gridgraph: maze is nil")
	// ErrBadBonus indicates a reward bonus that could make an edge weight negative.
	ErrBadBonus = errors.New("gridgraph: bonus must be between 0 and 1")
	// ErrBadPenalty indicates a negative enemy penalty.
	ErrBadPenalty = errors.New("gridgraph: penalty must be non-negative")
)
