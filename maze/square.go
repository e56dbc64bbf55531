package maze

import "fmt"

// Square is a single maze cell. It is a plain value: two squares are equal
// when all their fields are equal.
type Square struct {
	Index  int
	Row    int
	Column int
	Border Border
	Role   Role
}

// SharesLine reports whether s and o lie in the same row or the same column.
func (s Square) SharesLine(o Square) bool {
	return s.Row == o.Row || s.Column == o.Column
}

func (s Square) String() string {
	return fmt.Sprintf("#%d(%d,%d %s %s)", s.Index, s.Row, s.Column, s.Border, s.Role)
}
