package maze

import (
	"math/bits"
	"strings"
)

// Border is a 4-bit mask of the walled sides of a square.
// The bit values are part of the maze file format and must not change.
type Border uint8

// Empty means no side is walled.
const Empty Border = 0

const (
	// Top marks a wall on the upper side.
	Top Border = 1 << iota
	// Bottom marks a wall on the lower side.
	Bottom
	// Left marks a wall on the left side.
	Left
	// Right marks a wall on the right side.
	Right
)

// BorderMask covers every defined Border bit.
const BorderMask Border = Top | Bottom | Left | Right

// Has reports whether every bit of side is set in b.
func (b Border) Has(side Border) bool {
	return b&side == side
}

// Count returns the number of walled sides.
func (b Border) Count() int {
	return bits.OnesCount8(uint8(b & BorderMask))
}

// Corner reports whether exactly two adjacent sides are walled.
// Opposite pairs (Top|Bottom, Left|Right) are corridors, not corners.
func (b Border) Corner() bool {
	switch b {
	case Top | Left, Top | Right, Bottom | Left, Bottom | Right:
		return true
	}
	return false
}

// DeadEnd reports whether exactly one side is open.
func (b Border) DeadEnd() bool {
	return b.Count() == 3
}

// Intersection reports whether three or four sides are open.
func (b Border) Intersection() bool {
	return b.Count() < 2
}

// String renders the mask as "TOP|LEFT", or "EMPTY" when no side is walled.
func (b Border) String() string {
	if b&BorderMask == Empty {
		return "EMPTY"
	}
	names := make([]string, 0, 4)
	for _, side := range [...]struct {
		bit  Border
		name string
	}{{Top, "TOP"}, {Bottom, "BOTTOM"}, {Left, "LEFT"}, {Right, "RIGHT"}} {
		if b.Has(side.bit) {
			names = append(names, side.name)
		}
	}
	return strings.Join(names, "|")
}
