package core_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/katalvlaran/lvmaze/core"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight5 = 5
)

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}

// MustNoError fails the test on a non-nil error.
func MustNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph()
	st := g.Stats()
	if st.Weighted || st.AllowsLoops || st.AllowsMulti {
		t.Fatalf("unexpected default flags: %+v", st)
	}
	if st.VertexCount != 0 || st.EdgeCount != 0 {
		t.Fatalf("new graph not empty: %+v", st)
	}

	g = core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	st = g.Stats()
	if !st.Weighted || !st.AllowsLoops || !st.AllowsMulti {
		t.Fatalf("options not applied: %+v", st)
	}
}

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, g.AddVertex(3))
	MustNoError(t, g.AddVertex(3)) // idempotent
	MustNoError(t, g.AddVertex(0))
	MustErrorIs(t, g.AddVertex(-1), core.ErrBadVertexID)

	if !g.HasVertex(3) || g.HasVertex(1) {
		t.Fatal("HasVertex mismatch")
	}
	if got := g.Vertices(); !reflect.DeepEqual(got, []int{0, 3}) {
		t.Fatalf("Vertices() = %v", got)
	}
	if g.VertexCount() != 2 {
		t.Fatalf("VertexCount() = %d", g.VertexCount())
	}
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	MustNoError(t, g.AddEdge(1, 2, Weight5))

	if !g.HasEdge(1, 2) {
		t.Fatal("expected edge 1→2")
	}
	if g.HasEdge(2, 1) {
		t.Fatal("edge must be one-way")
	}
	if !g.HasVertex(1) || !g.HasVertex(2) {
		t.Fatal("endpoints must be added")
	}

	e, err := g.GetEdge(1, 2)
	MustNoError(t, err)
	if e.From != 1 || e.To != 2 || e.Weight != Weight5 {
		t.Fatalf("GetEdge = %+v", e)
	}
	_, err = g.GetEdge(2, 1)
	MustErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestAddEdge_Errors(t *testing.T) {
	cases := []struct {
		name     string
		opts     []core.GraphOption
		from, to int
		weight   int64
		want     error
	}{
		{"negative from", []core.GraphOption{core.WithWeighted()}, -1, 2, Weight1, core.ErrBadVertexID},
		{"negative to", []core.GraphOption{core.WithWeighted()}, 1, -2, Weight1, core.ErrBadVertexID},
		{"weight on unweighted", nil, 1, 2, Weight1, core.ErrBadWeight},
		{"loop", []core.GraphOption{core.WithWeighted()}, 1, 1, Weight1, core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			MustErrorIs(t, g.AddEdge(tc.from, tc.to, tc.weight), tc.want)
			if g.EdgeCount() != 0 {
				t.Fatalf("rejected edge was stored")
			}
		})
	}
}

func TestAddEdge_MultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	MustNoError(t, g.AddEdge(0, 1, Weight1))
	MustErrorIs(t, g.AddEdge(0, 1, Weight2), core.ErrMultiEdgeNotAllowed)
	MustNoError(t, g.AddEdge(1, 0, Weight2)) // reverse direction is distinct

	m := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	MustNoError(t, m.AddEdge(0, 1, Weight1))
	MustNoError(t, m.AddEdge(0, 1, Weight2))
	if m.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", m.EdgeCount())
	}
}

func TestAddEdge_Loops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	MustNoError(t, g.AddEdge(4, 4, Weight0))
	if !g.HasEdge(4, 4) || g.VertexCount() != 1 {
		t.Fatal("self-loop not stored")
	}
}

func TestNeighbors_Sorted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	MustNoError(t, g.AddEdge(0, 3, Weight1))
	MustNoError(t, g.AddEdge(0, 1, Weight5))
	MustNoError(t, g.AddEdge(0, 3, Weight2))
	MustNoError(t, g.AddEdge(2, 0, Weight1))

	nbs, err := g.Neighbors(0)
	MustNoError(t, err)
	got := make([][2]int64, len(nbs))
	for i, e := range nbs {
		got[i] = [2]int64{int64(e.To), e.Weight}
	}
	want := [][2]int64{{1, Weight5}, {3, Weight1}, {3, Weight2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Neighbors(0) = %v, want %v", got, want)
	}

	nbs, err = g.Neighbors(1)
	MustNoError(t, err)
	if len(nbs) != 0 {
		t.Fatalf("sink vertex has neighbors: %v", nbs)
	}

	_, err = g.Neighbors(9)
	MustErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_Sorted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	MustNoError(t, g.AddEdge(2, 1, Weight1))
	MustNoError(t, g.AddEdge(0, 2, Weight1))
	MustNoError(t, g.AddEdge(0, 1, Weight1))

	var got [][2]int
	for _, e := range g.Edges() {
		got = append(got, [2]int{e.From, e.To})
	}
	want := [][2]int{{0, 1}, {0, 2}, {2, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
}

func TestGraph_ConcurrentAdds(t *testing.T) {
	const n = 200
	g := core.NewGraph(core.WithWeighted())

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := g.AddEdge(i, i+1, Weight1); err != nil {
				errs <- err
			}
			_, _ = g.Neighbors(i)
			_ = g.Vertices()
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent AddEdge: %v", err)
	}

	if g.EdgeCount() != n || g.VertexCount() != n+1 {
		t.Fatalf("counts after concurrent adds: %+v", g.Stats())
	}
}
