package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcapprox/core"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	require.Equal(t, 1, g.VertexCount())
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)

	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)

	// undirected: the mirror counts as the same edge
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 5)
	require.NoError(t, err)

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, int64(2), w)
	w, err = g.Weight("B", "A")
	require.NoError(t, err)
	require.Equal(t, int64(5), w)

	_, err = g.Weight("A", "C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, nbrs)

	d, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 2, d) // one in, one out
}

func TestDegreeAndNeighbors(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"B", "E"}, {"D", "E"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	want := map[string]int{"A": 2, "B": 3, "C": 1, "D": 2, "E": 2}
	for id, deg := range want {
		got, err := g.Degree(id)
		require.NoError(t, err)
		require.Equal(t, deg, got, "degree of %s", id)
	}

	_, err := g.Degree("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "E"}, nbrs)

	require.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Vertices())
}

func TestFreeze(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("B", "A", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	g.Freeze()
	g.Freeze() // no-op
	require.True(t, g.Frozen())

	require.ErrorIs(t, g.AddVertex("D"), core.ErrFrozen)
	_, err = g.AddEdge("A", "C", 0)
	require.ErrorIs(t, err, core.ErrFrozen)
	require.ErrorIs(t, g.SetVertexAttr("A", "k", "v"), core.ErrFrozen)

	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, nbrs)

	_, err = g.NeighborIDs("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdgesOrderAndAdjacency(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)), 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	// numeric order: e1, e2, ..., e10, e11, e12
	require.Equal(t, "e10", edges[9].ID)
	require.Equal(t, "j", edges[9].To)

	adj := g.AdjacencyList()
	require.Len(t, adj["hub"], 12)
	require.Equal(t, []string{"hub"}, adj["a"])
}

func TestVertexAttrs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.SetVertexAttr("A", "label", "alpha"))
	require.ErrorIs(t, g.SetVertexAttr("B", "label", "beta"), core.ErrVertexNotFound)

	v, ok := g.VertexAttr("A", "label")
	require.True(t, ok)
	require.Equal(t, "alpha", v)
	_, ok = g.VertexAttr("A", "missing")
	require.False(t, ok)
}

func TestUnweightedView(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 9)
	require.NoError(t, err)

	v := core.UnweightedView(g)
	require.True(t, v.Frozen())
	require.False(t, v.Weighted())
	require.Equal(t, g.Vertices(), v.Vertices())
	w, err := v.Weight("A", "B")
	require.NoError(t, err)
	require.Zero(t, w)

	// source untouched
	w, err = g.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, int64(7), w)
}

func TestConcurrentBuild(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				from := string(rune('A' + w))
				to := string(rune('a'+(i%26))) + string(rune('0'+w))
				_, _ = g.AddEdge(from, to, 0)
				_, _ = g.NeighborIDs(from)
			}
		}(w)
	}
	wg.Wait()
	g.Freeze()

	// 8 hubs, each with 26 distinct leaves
	require.Equal(t, 8+8*26, g.VertexCount())
	require.Equal(t, 8*26, g.EdgeCount())
}
