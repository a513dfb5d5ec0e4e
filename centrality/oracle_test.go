package centrality_test

import (
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/pathindex"
)

// gridWithChords is a 4×4 grid plus two diagonals: plenty of equal-length
// shortest paths.
func gridWithChords() [][2]int64 {
	const side = 4
	var edges [][2]int64
	for r := int64(0); r < side; r++ {
		for c := int64(0); c < side; c++ {
			id := r*side + c
			if c+1 < side {
				edges = append(edges, [2]int64{id, id + 1})
			}
			if r+1 < side {
				edges = append(edges, [2]int64{id, id + side})
			}
		}
	}

	return append(edges, [2]int64{0, 5}, [2]int64{10, 15})
}

// TestDependency_MatchesGonumBrandes sums the per-source dependencies over
// every source and compares the result with gonum's exact betweenness.
func TestDependency_MatchesGonumBrandes(t *testing.T) {
	edges := gridWithChords()

	ref := simple.NewUndirectedGraph()
	named := make([][2]string, 0, len(edges))
	for _, e := range edges {
		ref.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
		named = append(named, [2]string{strconv.FormatInt(e[0], 10), strconv.FormatInt(e[1], 10)})
	}
	want := network.Betweenness(ref)

	g := graphFrom(t, named)
	ix, err := pathindex.New(g, pathindex.NewBFSSearcher(g))
	require.NoError(t, err)
	got := make(map[int64]float64)
	for _, s := range ix.Nodes() {
		tree, err := ix.GetOrCompute(context.Background(), s)
		require.NoError(t, err)
		for _, v := range ix.Nodes() {
			id, err := strconv.ParseInt(v, 10, 64)
			require.NoError(t, err)
			got[id] += centrality.Dependency(tree, v)
		}
	}

	// Ordered-pair sums; the reference may count each unordered pair once.
	var top int64
	for id, v := range want {
		if v > want[top] {
			top = id
		}
	}
	require.Positive(t, want[top])
	scale := got[top] / want[top]
	require.True(t, math.Abs(scale-1) < 1e-9 || math.Abs(scale-2) < 1e-9, "scale %v", scale)

	for id := int64(0); id < 16; id++ {
		require.InDelta(t, scale*want[id], got[id], 1e-9, "vertex %d", id)
	}
}
