// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Edges are replayed in insertion order, so edge IDs are preserved.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// UnweightedView returns a new, frozen Graph with identical topology and
// directedness but with all edge weights dropped. The input graph is not
// mutated. The estimator uses it to run the BFS searcher over a graph that
// was loaded with weights.
//
// Complexity: O(V + E).
func UnweightedView(g *Graph) *Graph {
	out := NewGraph(WithDirected(g.Directed()))

	for _, id := range g.Vertices() {
		// Fresh graph, non-empty IDs: AddVertex cannot fail here.
		_ = out.AddVertex(id)
	}
	for _, e := range g.Edges() {
		// Parallel edges are impossible in the source graph.
		_, _ = out.AddEdge(e.From, e.To, 0)
	}
	out.Freeze()

	return out
}
