package centrality_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/pathindex"
)

// graphFrom builds a frozen undirected, unweighted graph from an edge list.
func graphFrom(t testing.TB, edges [][2]string, isolated ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	for _, id := range isolated {
		require.NoError(t, g.AddVertex(id))
	}
	g.Freeze()

	return g
}

// bridgeGraph is A–B, B–C, A–D, B–E, D–E. Exact ordered-pair betweenness:
// A=2, B=7, C=0, D=1, E=2.
func bridgeGraph(t testing.TB) *core.Graph {
	return graphFrom(t, [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"B", "E"}, {"D", "E"}})
}

func pathGraph(t testing.TB, ids ...string) *core.Graph {
	edges := make([][2]string, 0, len(ids))
	for i := 0; i+1 < len(ids); i++ {
		edges = append(edges, [2]string{ids[i], ids[i+1]})
	}

	return graphFrom(t, edges)
}

func cycleGraph(t testing.TB, n int) *core.Graph {
	edges := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]string{fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%n)})
	}

	return graphFrom(t, edges)
}

func completeGraph(t testing.TB, n int) *core.Graph {
	var edges [][2]string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]string{fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j)})
		}
	}

	return graphFrom(t, edges)
}

// newEstimator wires a fresh hop-count index to an Estimator.
func newEstimator(t testing.TB, g *core.Graph, opts ...centrality.Option) (*centrality.Estimator, *pathindex.Index) {
	t.Helper()
	ix, err := pathindex.New(g, pathindex.NewBFSSearcher(g))
	require.NoError(t, err)
	est, err := centrality.NewEstimator(g, ix, opts...)
	require.NoError(t, err)

	return est, ix
}
