package centrality_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/bcapprox/builder"
	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/pathindex"
)

func benchGrid(side int) *core.Graph {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(side, side))
	if err != nil {
		panic(err)
	}
	g.Freeze()

	return g
}

// BenchmarkEstimate_WarmIndex measures the sampling loop once every tree is cached.
func BenchmarkEstimate_WarmIndex(b *testing.B) {
	g := benchGrid(20)
	ix, _ := pathindex.New(g, pathindex.NewBFSSearcher(g))
	est, _ := centrality.NewEstimator(g, ix, centrality.WithThreshold(2))
	ctx := context.Background()
	_, _ = est.Sweep(ctx, g.Vertices())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = est.Estimate(ctx, "10,10")
	}
}

// BenchmarkSweep_Parallel measures a cold sweep over every vertex with 4 workers.
func BenchmarkSweep_Parallel(b *testing.B) {
	g := benchGrid(12)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix, _ := pathindex.New(g, pathindex.NewBFSSearcher(g))
		est, _ := centrality.NewEstimator(g, ix, centrality.WithThreshold(1), centrality.WithWorkers(4))
		_, _ = est.Sweep(ctx, g.Vertices())
	}
}

// BenchmarkEstimate_GNM measures a cold estimate on a sparse random graph.
func BenchmarkEstimate_GNM(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.GNM(500, 1500))
	if err != nil {
		b.Fatal(err)
	}
	g.Freeze()
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix, _ := pathindex.New(g, pathindex.NewBFSSearcher(g))
		est, _ := centrality.NewEstimator(g, ix, centrality.WithMaxSamples(10_000))
		_, _ = est.Estimate(ctx, "0")
	}
}
