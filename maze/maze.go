package maze

// Maze is an immutable, row-major grid of squares with exactly one
// Entrance and one Exit. Width, Height, Entrance and Exit are computed once
// in New.
type Maze struct {
	squares  []Square
	width    int
	height   int
	entrance int // index of the Entrance square
	exit     int // index of the Exit square
}

// New validates squares and returns the Maze they describe.
// The slice is copied; later changes by the caller do not affect the Maze.
//
// Checks, in order:
//  1. At least one square (ErrEmptyMaze).
//  2. squares[i].Index == i (ErrIndexOrder).
//  3. Row == Index/width and Column == Index%width, with
//     width = max(Column)+1 and height = max(Row)+1 (ErrRowColumn),
//     and len(squares) == width*height (ErrNotRectangular).
//  4. Every role is defined (ErrInvalidRole).
//  5. Exactly one Entrance (ErrEntranceCount) and one Exit (ErrExitCount).
//
// Every returned error also matches ErrGridInvariant.
// Complexity: O(N) time and memory.
func New(squares []Square) (*Maze, error) {
	if len(squares) == 0 {
		return nil, violation(ErrEmptyMaze, "got 0 squares")
	}

	m := &Maze{
		squares:  make([]Square, len(squares)),
		entrance: -1,
		exit:     -1,
	}
	copy(m.squares, squares)

	for i, sq := range m.squares {
		if sq.Index != i {
			return nil, violation(ErrIndexOrder, "position %d holds index %d", i, sq.Index)
		}
		if sq.Column+1 > m.width {
			m.width = sq.Column + 1
		}
		if sq.Row+1 > m.height {
			m.height = sq.Row + 1
		}
	}
	if m.width == 0 || m.height == 0 {
		return nil, violation(ErrRowColumn, "no square has a non-negative row and column")
	}
	if err := m.validateRowsColumns(); err != nil {
		return nil, err
	}
	if err := m.validateRoles(); err != nil {
		return nil, err
	}

	return m, nil
}

// MustNew is like New but panics when squares violate a grid invariant.
// It is meant for literal fixtures whose validity is a programming matter.
func MustNew(squares []Square) *Maze {
	m, err := New(squares)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Maze) validateRowsColumns() error {
	for _, sq := range m.squares {
		if sq.Row < 0 || sq.Column < 0 || sq.Row != sq.Index/m.width || sq.Column != sq.Index%m.width {
			return violation(ErrRowColumn, "square %d at (%d,%d), want (%d,%d)",
				sq.Index, sq.Row, sq.Column, sq.Index/m.width, sq.Index%m.width)
		}
	}
	if len(m.squares) != m.width*m.height {
		return violation(ErrNotRectangular, "%d squares for %dx%d grid", len(m.squares), m.width, m.height)
	}
	return nil
}

func (m *Maze) validateRoles() error {
	entrances, exits := 0, 0
	for _, sq := range m.squares {
		switch {
		case !sq.Role.Valid():
			return violation(ErrInvalidRole, "square %d has %s", sq.Index, sq.Role)
		case sq.Role == Entrance:
			entrances++
			m.entrance = sq.Index
		case sq.Role == Exit:
			exits++
			m.exit = sq.Index
		}
	}
	if entrances != 1 {
		return violation(ErrEntranceCount, "found %d", entrances)
	}
	if exits != 1 {
		return violation(ErrExitCount, "found %d", exits)
	}
	return nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Len returns the number of squares (Width*Height).
func (m *Maze) Len() int { return len(m.squares) }

// Entrance returns the unique Entrance square.
func (m *Maze) Entrance() Square { return m.squares[m.entrance] }

// Exit returns the unique Exit square.
func (m *Maze) Exit() Square { return m.squares[m.exit] }

// At returns the square with the given index. It panics if index is out of range,
// like a slice access would.
func (m *Maze) At(index int) Square { return m.squares[index] }

// AtPosition returns the square at (row, column).
func (m *Maze) AtPosition(row, column int) Square {
	return m.squares[row*m.width+column]
}

// Squares returns a copy of all squares in index order.
func (m *Maze) Squares() []Square {
	out := make([]Square, len(m.squares))
	copy(out, m.squares)
	return out
}

// Equal reports whether m and o hold the same squares, field for field.
func (m *Maze) Equal(o *Maze) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.squares) != len(o.squares) {
		return false
	}
	for i := range m.squares {
		if m.squares[i] != o.squares[i] {
			return false
		}
	}
	return true
}
