// Package mazetest holds maze fixtures shared by the test suites.
package mazetest

import (
	"math/rand"

	"github.com/katalvlaran/lvmaze/maze"
)

// Squares lays out borders row-major on a grid of the given width and
// applies roles by index. Indices missing from roles get maze.None.
func Squares(width int, borders []maze.Border, roles map[int]maze.Role) []maze.Square {
	out := make([]maze.Square, len(borders))
	for i, b := range borders {
		out[i] = maze.Square{
			Index:  i,
			Row:    i / width,
			Column: i % width,
			Border: b,
			Role:   roles[i],
		}
	}
	return out
}

// Reference returns the classic 3x4 maze. Its only route from the
// entrance (8) to the exit (2) is 8 9 10 11 7 6 2.
//
//	 0 TL    1 TR    2 LR  X   3 TLR
//	 4 BLR   5 LR    6 BL      7 R
//	 8 TL E  9 B    10 TB     11 BR
func Reference() *maze.Maze {
	return maze.MustNew(Squares(4, []maze.Border{
		maze.Top | maze.Left,
		maze.Top | maze.Right,
		maze.Left | maze.Right,
		maze.Top | maze.Left | maze.Right,
		maze.Bottom | maze.Left | maze.Right,
		maze.Left | maze.Right,
		maze.Bottom | maze.Left,
		maze.Right,
		maze.Top | maze.Left,
		maze.Bottom,
		maze.Top | maze.Bottom,
		maze.Bottom | maze.Right,
	}, map[int]maze.Role{8: maze.Entrance, 2: maze.Exit}))
}

// ReferenceRoute is the square sequence of the only solution of Reference.
var ReferenceRoute = []int{8, 9, 10, 11, 7, 6, 2}

// TwinRoutes returns a 3x3 maze with a walled centre and two routes of
// equal length from the entrance (0) to the exit (8):
// upper 0 1 2 5 8 and lower 0 3 6 7 8. Square 2 on the upper route
// gets the given role. Square 1 is walled below, square 3 on its right.
//
//	0 entrance  1 _     2 upper
//	3 |         4 wall  5
//	6           7       8 exit
func TwinRoutes(upper maze.Role) *maze.Maze {
	borders := make([]maze.Border, 9)
	borders[1] = maze.Bottom
	borders[3] = maze.Right
	borders[4] = maze.BorderMask
	return maze.MustNew(Squares(3, borders, map[int]maze.Role{
		0: maze.Entrance,
		2: upper,
		4: maze.Wall,
		8: maze.Exit,
	}))
}

// Upper and Lower are the two routes of TwinRoutes.
var (
	UpperRoute = []int{0, 1, 2, 5, 8}
	LowerRoute = []int{0, 3, 6, 7, 8}
)

// Enclosed returns a 3x3 maze whose entrance (0) is walled off on the
// right and bottom, so no route reaches the exit (8).
func Enclosed() *maze.Maze {
	borders := make([]maze.Border, 9)
	borders[0] = maze.Right | maze.Bottom
	return maze.MustNew(Squares(3, borders, map[int]maze.Role{
		0: maze.Entrance,
		8: maze.Exit,
	}))
}

// Cordoned returns a 3x3 maze whose entrance (0) is cut off by a Wall
// (1) and an Exterior square (3). The entrance itself has no borders; the
// scans cross into 1 and 3 and stop on their far sides.
//
//	0 entrance  1 wall |  2
//	3 exterior  4         5
//	  ---
//	6           7         8 exit
func Cordoned() *maze.Maze {
	borders := make([]maze.Border, 9)
	borders[1] = maze.Right
	borders[3] = maze.Bottom
	return maze.MustNew(Squares(3, borders, map[int]maze.Role{
		0: maze.Entrance,
		1: maze.Wall,
		3: maze.Exterior,
		8: maze.Exit,
	}))
}

// Corridor returns a 1x3 maze whose entrance and exit are separated by a
// Wall square without borders: the walk crosses it in a single step.
func Corridor() *maze.Maze {
	return maze.MustNew(Squares(3, make([]maze.Border, 3), map[int]maze.Role{
		0: maze.Entrance,
		1: maze.Wall,
		2: maze.Exit,
	}))
}

// fillerRoles are the roles a random maze may use besides its entrance and exit.
var fillerRoles = []maze.Role{maze.None, maze.Enemy, maze.Exterior, maze.Reward, maze.Wall}

// Random builds a valid width x height maze from seed, with random borders
// and roles. It needs at least two squares.
func Random(width, height int, seed int64) *maze.Maze {
	rng := rand.New(rand.NewSource(seed))
	n := width * height
	borders := make([]maze.Border, n)
	roles := make(map[int]maze.Role, n)
	for i := range borders {
		borders[i] = maze.Border(rng.Intn(16))
		roles[i] = fillerRoles[rng.Intn(len(fillerRoles))]
	}
	entrance := rng.Intn(n)
	exit := (entrance + 1 + rng.Intn(n-1)) % n
	roles[entrance] = maze.Entrance
	roles[exit] = maze.Exit
	return maze.MustNew(Squares(width, borders, roles))
}
