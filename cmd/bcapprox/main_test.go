package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/evaluation"
	"github.com/katalvlaran/bcapprox/loader"
)

func execute(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
}

// The commands share one viper instance, so flags set on estimate carry over
// to average within this test.
func TestGenerateEstimateAverage(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graphs", "Test1.graphml")
	truthDir := filepath.Join(dir, "truth")
	resultsDir := filepath.Join(dir, "results")
	avgDir := filepath.Join(dir, "avg")
	metricsPath := filepath.Join(dir, "metrics.prom")

	execute(t, "generate", graphPath, "--n", "20", "--m", "30", "--graph-seed", "42", "--log-level", "error")

	g, err := loader.Load(graphPath)
	require.NoError(t, err)
	require.Equal(t, 20, g.VertexCount())
	require.Equal(t, 30, g.EdgeCount())

	// Degrees stand in for exact values; only the file layout matters here.
	values := make(map[string]float64)
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		values[id] = float64(d)
	}
	truth := evaluation.NewGroundTruth(values)
	require.NoError(t, evaluation.SaveGroundTruth(filepath.Join(truthDir, "betweenness_centrality_Test1.txt"), truth))

	execute(t, "estimate", filepath.Dir(graphPath),
		"--ground-truth-dir", truthDir,
		"--output-dir", resultsDir,
		"--thresholds", "2",
		"--repetitions", "2",
		"--top-k", "5",
		"--max-samples", "5000",
		"--normalization", "raw",
		"--workers", "2",
		"--metrics-file", metricsPath,
	)

	for rep := 0; rep < 2; rep++ {
		report, err := evaluation.LoadReport(evaluation.ResultPath(resultsDir, "Test1", centrality.NormRaw, 2, rep))
		require.NoError(t, err)
		require.Equal(t, 20, report.TotalNodes)
		require.Len(t, report.Rows, 20)
	}
	metricsText, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(metricsText), "bcapprox_samples_total")

	execute(t, "average", "Test1", "--average-dir", avgDir)

	f, err := os.Open(evaluation.AveragePath(avgDir, "Test1", centrality.NormRaw, 2))
	require.NoError(t, err)
	defer f.Close()
	avgs, err := evaluation.ReadAverages(f)
	require.NoError(t, err)
	require.Len(t, avgs, 5)
	require.Equal(t, truth.TopK(5)[0], avgs[0].Node)
	require.GreaterOrEqual(t, avgs[0].MeanApprox, 0.0)
}

func TestGraphFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mtx", "a.graphml", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	files, err := graphFiles([]string{dir})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.graphml"), filepath.Join(dir, "b.mtx")}, files)

	_, err = graphFiles([]string{filepath.Join(dir, "missing")})
	require.Error(t, err)
}
