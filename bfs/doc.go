// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, path counts
// and predecessor sets.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → the predecessor that discovered it
//   - Sigma: map from vertex → number of distinct shortest paths from start
//   - Preds: map from vertex → every shortest-path predecessor
//   - Supports OnEnqueue and OnVisit hooks, neighbor filtering and MaxDepth.
//
// Why
//
//   - Parent gives the single deterministic shortest path the shortest-path
//     index stores per (source, target) pair.
//   - Sigma and Preds are the full shortest-path DAG of Brandes-style
//     accumulation; they are kept for callers that track equal-length paths.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors sorted lexicographically, so the
//	visit sequence, Parent links and the order inside Preds are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (Preds may hold one entry per DAG edge)
//
// Usage
//
//	res, err := bfs.BFS(g, "start", bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph,
//	    // ErrOptionViolation, ErrNeighbors, or hook errors
//	}
//	path, err := res.PathTo("dest") // start … dest, or ErrNoPath
package bfs
