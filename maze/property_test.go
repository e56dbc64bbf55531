package maze_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvmaze/maze"
)

// TestBorderProperties relates the classification predicates to bit counts.
func TestBorderProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	borders := gen.UInt8Range(0, uint8(maze.BorderMask))

	properties.Property("dead end iff three walls", prop.ForAll(
		func(b uint8) bool {
			return maze.Border(b).DeadEnd() == (maze.Border(b).Count() == 3)
		},
		borders,
	))

	properties.Property("intersection iff fewer than two walls", prop.ForAll(
		func(b uint8) bool {
			return maze.Border(b).Intersection() == (maze.Border(b).Count() < 2)
		},
		borders,
	))

	properties.Property("corner has one horizontal and one vertical wall", prop.ForAll(
		func(b uint8) bool {
			br := maze.Border(b)
			horizontal := br.Has(maze.Top) != br.Has(maze.Bottom)
			vertical := br.Has(maze.Left) != br.Has(maze.Right)
			return br.Corner() == (br.Count() == 2 && horizontal && vertical)
		},
		borders,
	))

	properties.TestingRun(t)
}
