package maze

// Solution is an ordered path through a maze from its Entrance to its Exit.
// Consecutive squares share a row or a column but need not be adjacent:
// a step may cross squares that are not part of the walkable graph.
type Solution struct {
	squares []Square
}

// NewSolution validates and copies a path.
// Errors (all matching ErrGridInvariant): ErrEmptySolution, ErrSolutionStart,
// ErrSolutionEnd, ErrSolutionCorridor.
func NewSolution(squares []Square) (*Solution, error) {
	if len(squares) == 0 {
		return nil, violation(ErrEmptySolution, "got 0 squares")
	}
	if first := squares[0]; first.Role != Entrance {
		return nil, violation(ErrSolutionStart, "first square is %s", first)
	}
	if last := squares[len(squares)-1]; last.Role != Exit {
		return nil, violation(ErrSolutionEnd, "last square is %s", last)
	}
	for i := 1; i < len(squares); i++ {
		if !squares[i-1].SharesLine(squares[i]) {
			return nil, violation(ErrSolutionCorridor, "step %d: %s -> %s", i, squares[i-1], squares[i])
		}
	}

	s := &Solution{squares: make([]Square, len(squares))}
	copy(s.squares, squares)
	return s, nil
}

// Len returns the number of squares on the path.
func (s *Solution) Len() int { return len(s.squares) }

// At returns the i-th square of the path.
func (s *Solution) At(i int) Square { return s.squares[i] }

// Squares returns a copy of the path.
func (s *Solution) Squares() []Square {
	out := make([]Square, len(s.squares))
	copy(out, s.squares)
	return out
}

// Indices returns the maze indices of the path squares, in order.
func (s *Solution) Indices() []int {
	out := make([]int, len(s.squares))
	for i, sq := range s.squares {
		out[i] = sq.Index
	}
	return out
}
