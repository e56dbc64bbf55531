package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleBuild shows that the two directions of one corridor are weighed
// by their destination.
//
//	0 entrance   1 reward   2 exit
func ExampleBuild() {
	m := maze.MustNew([]maze.Square{
		{Index: 0, Row: 0, Column: 0, Role: maze.Entrance},
		{Index: 1, Row: 0, Column: 1, Role: maze.Reward},
		{Index: 2, Row: 0, Column: 2, Role: maze.Exit},
	})

	g, err := gridgraph.Build(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%d→%d weight %d\n", e.From, e.To, e.Weight)
	}

	// Output:
	// 0→1 weight 0
	// 1→0 weight 1
	// 1→2 weight 1
	// 2→1 weight 0
}
