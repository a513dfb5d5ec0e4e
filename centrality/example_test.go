package centrality_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bcapprox/centrality"
	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/pathindex"
)

// ExampleEstimator_Sweep estimates the hub and one leaf of a star.
func ExampleEstimator_Sweep() {
	g := core.NewGraph()
	for _, leaf := range []string{"L1", "L2", "L3", "L4"} {
		_, _ = g.AddEdge("hub", leaf, 0)
	}
	g.Freeze()

	ix, _ := pathindex.New(g, pathindex.NewBFSSearcher(g))
	est, _ := centrality.NewEstimator(g, ix, centrality.WithThreshold(5), centrality.WithSeed(42))
	results, _ := est.Sweep(context.Background(), []string{"hub", "L1"})

	for _, r := range results {
		fmt.Printf("%s outcome=%s short=%v reached=%v\n", r.Node, r.Outcome, r.ShortCircuited, r.Sum >= r.Threshold)
	}
	fmt.Println("leaf estimate:", results[1].Estimates.Raw)
	// Output:
	// hub outcome=converged short=false reached=true
	// L1 outcome=converged short=true reached=false
	// leaf estimate: 0
}
