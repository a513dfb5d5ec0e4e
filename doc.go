// Package bcapprox estimates betweenness centrality of selected vertices by
// adaptive sampling of single-source shortest paths.
//
// For a target v, sources are drawn uniformly with replacement; each draw adds
// the dependency of v on that source to a running sum S, and sampling stops
// once S reaches c·n. The estimate is n·S/k (or one of two finite-population
// variants). Shortest-path trees are memoized in a per-run index, so repeated
// sources and repeated targets cost no new traversal.
//
// Packages:
//
//	core/       thread-safe Graph, frozen into an immutable read-only input
//	bfs/        unweighted traversal with path counts and predecessor sets
//	dijkstra/   weighted traversal with a pluggable edge cost
//	pathindex/  memoized shortest-path trees (write-once, singleflight)
//	centrality/ dependency accumulator, sampling estimator, normalizer, Sweep
//	evaluation/ ground truth, result files, averages, accuracy summaries
//	loader/     edge list, Matrix Market, GraphML and node-link JSON readers
//	builder/    deterministic fixtures: Complete, Path, Cycle, Star, Grid, G(n,p), G(n,m)
//	metrics/    Prometheus instruments for the index and the estimator
//	config/     viper-backed run configuration
//	logging/    slog construction
//	cmd/bcapprox/ CLI: estimate, average, generate
//
// Quick example:
//
//	ix, _ := pathindex.New(g, pathindex.NewBFSSearcher(g))
//	est, _ := centrality.NewEstimator(g, ix, centrality.WithThreshold(2))
//	res, _ := est.Estimate(ctx, "B")
//	fmt.Println(res.Estimates.Raw, res.Samples, res.Outcome)
package bcapprox
