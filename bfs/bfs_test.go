package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcapprox/bfs"
	"github.com/katalvlaran/bcapprox/core"
)

// bridgeGraph returns A-B, B-C, A-D, B-E, D-E.
func bridgeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"B", "E"}, {"D", "E"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	g.Freeze()

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	gW := core.NewGraph(core.WithWeighted())
	require.NoError(t, gW.AddVertex("A"))
	_, err = bfs.BFS(gW, "A")
	require.ErrorIs(t, err, bfs.ErrWeightedGraph)

	g2 := core.NewGraph()
	require.NoError(t, g2.AddVertex("A"))
	_, err = bfs.BFS(g2, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_DepthsAndSigma checks layering and shortest-path counts on the bridge graph.
func TestBFS_DepthsAndSigma(t *testing.T) {
	res, err := bfs.BFS(bridgeGraph(t), "A")
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2, "E": 2}, res.Depth)

	// A→E has two shortest paths: A-B-E and A-D-E.
	require.Equal(t, 2.0, res.Sigma["E"])
	require.Equal(t, []string{"B", "D"}, res.Preds["E"])
	require.Equal(t, "B", res.Parent["E"])

	require.Equal(t, 1.0, res.Sigma["C"])
	require.Equal(t, []string{"B"}, res.Preds["C"])
	require.Empty(t, res.Preds["A"])
}

// TestBFS_PathTo reconstructs tree paths and reports unreachable vertices.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("X", "Y", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("Y", "Z", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("P", "Q", 0)
	require.NoError(t, err)

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)

	path, err := res.PathTo("Z")
	require.NoError(t, err)
	require.Equal(t, []string{"X", "Y", "Z"}, path)

	path, err = res.PathTo("X")
	require.NoError(t, err)
	require.Equal(t, []string{"X"}, path)

	_, err = res.PathTo("P")
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire once per vertex and errors abort.
func TestBFS_Hooks(t *testing.T) {
	g := bridgeGraph(t)

	var enq, vis []string
	_, err := bfs.BFS(g, "C",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id string, _ int) error { vis = append(vis, id); return nil }),
	)
	require.NoError(t, err)
	require.Len(t, enq, 5)
	require.Equal(t, enq, vis)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "C", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
}

// TestBFS_Cancelled returns the context error before visiting anything.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(bridgeGraph(t), "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
