package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/dijkstra"
)

func weightedSquare(t *testing.T) *core.Graph {
	t.Helper()
	// A–B (1), B–D (1), A–C (1), C–D (1), A–D (5)
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 1}, {"C", "D", 1}, {"A", "D", 5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	g.Freeze()

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := weightedSquare(t)

	_, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	unweighted := core.NewGraph()
	_, _ = unweighted.AddEdge("A", "B", 0)
	_, err = dijkstra.Dijkstra(unweighted, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
}

func TestDijkstra_TiesAndSigma(t *testing.T) {
	res, err := dijkstra.Dijkstra(weightedSquare(t), dijkstra.Source("A"))
	require.NoError(t, err)

	require.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 1, "D": 2}, res.Dist)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	require.Equal(t, 2.0, res.Sigma["D"])
	require.Equal(t, []string{"B", "C"}, res.Preds["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, path)
}

func TestDijkstra_WeightFuncAndThresholds(t *testing.T) {
	g := weightedSquare(t)

	// Hop count: A–D becomes a direct single hop.
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithWeightFunc(dijkstra.UnitWeight))
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Dist["D"])
	require.Equal(t, 1.0, res.Sigma["D"])

	res, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	_, reached := res.Dist["D"]
	require.False(t, reached)
	_, err = res.PathTo("D")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	neg := func(_, _ string, w int64) int64 { return -w }
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithWeightFunc(neg))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	// Unweighted graph accepted once a WeightFunc is supplied.
	ug := core.NewGraph()
	_, _ = ug.AddEdge("A", "B", 0)
	_, _ = ug.AddEdge("B", "C", 0)
	res, err = dijkstra.Dijkstra(ug, dijkstra.Source("A"), dijkstra.WithWeightFunc(dijkstra.UnitWeight))
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Dist["C"])
}

func TestDijkstra_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Dijkstra(weightedSquare(t), dijkstra.Source("A"), dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
