// Package dijkstra provides Dijkstra's shortest-path algorithm on graphs with
// non-negative edge costs, returning distances, parent links, path counts and
// predecessor sets in the same shape as package bfs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - Edge cost comes from a WeightFunc (stored weight by default), which makes
//     the distance function pluggable for the shortest-path index.
//   - Supports distance caps and "impassable" edge thresholds.
//
// Determinism:
//
//   - Neighbors are scanned in sorted order and heap ties are broken by vertex
//     ID, so Order, Parent and the order inside Preds are reproducible.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.PathTo("C")
//	fmt.Println(res.Dist["C"], path)
package dijkstra
