// Package centrality estimates betweenness centrality of selected vertices by
// adaptive source sampling over a shared shortest-path index.
//
// Components:
//
//   - Accumulator: for one sampled source s, orders the vertices of the
//     source's Tree by distance, counts shortest paths forward (sigma) and
//     runs the Brandes backward pass
//     dependency[p] += sigma[p]/sigma[w]·(1 + dependency[w]).
//     The sample's contribution toward target v is dependency[v].
//     ModePathCount instead counts stored paths through v; it is biased and
//     only used when asked for by name.
//   - Estimator: per target v, draws sources uniformly with replacement until
//     the accumulated sum S reaches c·n, or until MaxSamples is exhausted, in
//     which case the Result is DidNotConverge and carries the partial
//     estimate. Vertices with degree ≤ 1 short-circuit to an exact zero with
//     no samples.
//   - Normalizer: turns (S, k, n) into the Raw, FallingFactorial and
//     ProductForm estimates at once; callers pick the convention they report.
//   - Sweep: estimates many targets concurrently (errgroup, bounded by
//     Workers) over one pathindex.Index.
//
// Determinism:
//
//   - Every target owns a math/rand stream derived from (Seed, position of the
//     target in the sorted vertex list). Two runs over the same graph with the
//     same seed produce bit-identical (S, k) trajectories.
//
// Adaptive stopping:
//
//   - The expected contribution of one sample is proportional to the true
//     centrality of v, so low-centrality vertices take more samples before
//     reaching c·n and high-centrality vertices stop early.
//
// Example:
//
//	g.Freeze() // g is any *core.Graph
//	ix, _ := pathindex.New(g, pathindex.NewBFSSearcher(g))
//	est, _ := centrality.NewEstimator(g, ix, centrality.WithThreshold(5))
//	res, _ := est.Estimate(ctx, "7")
//	fmt.Println(res.Estimates.Raw, res.Samples, res.Outcome)
package centrality
