// Package pathindex implements a memoized, concurrency-safe shortest-path index
// shared by every target node of an estimation run.
//
// What:
//
//   - Index.GetOrCompute(ctx, s) returns the shortest-path Tree of source s: one
//     Entry per node of the graph, either an ordered path s…t or Unreachable.
//   - Entries are write-once. A traversal from s also stores every reverse path
//     t…s (undirected graphs only) and, for each consecutive pair (a, b) on a
//     computed path, the direct two-node path a→b. Later lookups for sources
//     whose entries were all filled this way need no traversal at all.
//   - Every Tree also carries the full equal-cost predecessor sets and path
//     counts (sigma), so they stay exact on graphs with ties even though each
//     Entry stores a single path. A traversal supplies them directly; a Tree
//     assembled from stored entries rebuilds them from distances, and falls
//     back to a traversal when a zero-cost edge joins equally distant nodes.
//
// Why:
//
//   - Sampling revisits the same sources many times across many target nodes;
//     the index makes each source cost one traversal per run.
//
// Concurrency:
//
//   - Lookups of complete sources take a read lock only.
//   - Concurrent misses on the same source are collapsed by singleflight, so at
//     most one traversal per source wins and every caller reads its result.
//
// Pluggable distance:
//
//   - A Searcher supplies single-source traversals and per-edge costs.
//     BFSSearcher counts hops; DijkstraSearcher applies a dijkstra.WeightFunc.
//
// Lifetime:
//
//   - An Index belongs to one run over one immutable graph. It is never global.
package pathindex
