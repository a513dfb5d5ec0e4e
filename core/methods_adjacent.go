// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Frozen graphs answer from immutable snapshots without locking.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// NeighborIDs returns the vertex IDs adjacent to id, sorted lexicographically
// ascending. For directed graphs only outgoing neighbors are included.
//
// On a frozen graph the returned slice is shared; callers must not modify it.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Frozen: O(1). Otherwise: O(d log d) time, O(d) space.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if g.frozen.Load() {
		nbrs, ok := g.sortedAdj[id]
		if !ok {
			return nil, ErrVertexNotFound
		}

		return nbrs, nil
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedNeighborIDs(g.adjacencyList[id]), nil
}

// AdjacencyList returns a fresh map from each vertex to its sorted neighbor IDs.
//
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		out[id] = sortedNeighborIDs(g.adjacencyList[id])
	}

	return out
}

// ensureAdjacency bootstraps the adjacency bucket for id.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]string)
	}
}

func sortedNeighborIDs(bucket map[string]string) []string {
	out := make([]string, 0, len(bucket))
	for to := range bucket {
		out = append(out, to)
	}
	sort.Strings(out)

	return out
}
