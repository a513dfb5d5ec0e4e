package evaluation_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/evaluation"
)

func TestErrorPercentage(t *testing.T) {
	require.Equal(t, 0.0, evaluation.ErrorPercentage(0, 12.5), "zero truth means zero error")
	require.InDelta(t, 50.0, evaluation.ErrorPercentage(2, 1), 1e-12)
	require.InDelta(t, 50.0, evaluation.ErrorPercentage(2, 3), 1e-12)
	require.Equal(t, 0.0, evaluation.ErrorPercentage(4, 4))
}

func bridge(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"B", "E"}, {"D", "E"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	g.Freeze()

	return g
}

func TestBuildAndWriteReport(t *testing.T) {
	g := bridge(t)
	gt, err := evaluation.ReadGroundTruth(strings.NewReader(sampleGroundTruth))
	require.NoError(t, err)

	results := []centrality.Result{
		{Node: "B", SSPCount: 20, Estimates: centrality.Estimates{Raw: 3, FallingFactorial: 0.25}},
		{Node: "C", ShortCircuited: true},
	}
	rep := evaluation.BuildReport(g, gt, results, centrality.NormRaw, 1500*time.Millisecond)
	require.Equal(t, 5, rep.TotalNodes)
	require.Len(t, rep.Rows, 5)

	b := rep.Rows[1]
	require.Equal(t, "B", b.Node)
	require.Equal(t, 3, b.Degree)
	require.Equal(t, 3.0, b.Approx)
	require.InDelta(t, 100.0/7, b.ErrorPct, 1e-9)
	require.Equal(t, uint64(20), b.NumSSP)
	require.Equal(t, 4.0, b.SSPPerNode)

	// Targets that were not estimated report zeros.
	require.Equal(t, 0.0, rep.Rows[0].Approx)
	require.Equal(t, uint64(0), rep.Rows[0].NumSSP)

	var buf bytes.Buffer
	require.NoError(t, evaluation.WriteReport(&buf, rep))
	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "Total Nodes: 5", lines[0])
	require.Equal(t, "Calculation Time (seconds): 1.5", lines[1])
	require.Equal(t, "", lines[2])
	require.Equal(t, "Node\tDegree\tTrue_BC\tApproximated_BC\tErrorPercentage\tNumSSP\tNumSSP/TotalNodes", lines[3])
	require.Equal(t, "B\t3\t3.5\t3\t14.285714\t20\t4.000000", lines[5])

	back, err := evaluation.ReadReport(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, rep.TotalNodes, back.TotalNodes)
	require.Equal(t, rep.Elapsed, back.Elapsed)
	require.Len(t, back.Rows, 5)
	require.Equal(t, "B", back.Rows[1].Node)
	require.InDelta(t, 14.285714, back.Rows[1].ErrorPct, 1e-9)
}

func TestReadReport_Malformed(t *testing.T) {
	_, err := evaluation.ReadReport(strings.NewReader("Nodes: 5\n"))
	require.ErrorIs(t, err, evaluation.ErrMalformedHeader)

	_, err = evaluation.ReadReport(strings.NewReader("Total Nodes: 5\nCalculation Time (seconds): 1\n\nNode Degree\n"))
	require.ErrorIs(t, err, evaluation.ErrMalformedHeader)

	bad := "Total Nodes: 5\nCalculation Time (seconds): 1\n\n" +
		"Node\tDegree\tTrue_BC\tApproximated_BC\tErrorPercentage\tNumSSP\tNumSSP/TotalNodes\n" +
		"A\ttwo\t1\t1\t0\t1\t0.2\n"
	_, err = evaluation.ReadReport(strings.NewReader(bad))
	require.ErrorIs(t, err, evaluation.ErrMalformedRow)
}

func TestResultPaths(t *testing.T) {
	require.Equal(t,
		filepath.Join("out", "Results_raw_c2", "Rand_results_c2_rep0.txt"),
		evaluation.ResultPath("out", "Rand", centrality.NormRaw, 2, 0))
	require.Equal(t,
		filepath.Join("out", "Results_product_form_c2.5"),
		evaluation.ResultDir("out", centrality.NormProductForm, 2.5))
	require.Equal(t,
		filepath.Join("avg", "Rand_averaged_falling_factorial_c3.txt"),
		evaluation.AveragePath("avg", "Rand", centrality.NormFallingFactorial, 3))
}
