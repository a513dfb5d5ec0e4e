// File: methods_vertices.go
// Role: Vertex lifecycle & queries, and the Freeze transition.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert until Freeze; lock-free afterwards.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID and mutability.
//   - Stage 2: Under muVert write lock, register the vertex if absent.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap its adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrFrozen: if the graph has been frozen.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if g.frozen.Load() {
		return ErrFrozen
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	// Re-check under the lock: Freeze may have run since the fast path.
	if g.frozen.Load() {
		return ErrFrozen
	}
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]string)}

	// Lock order is muVert -> muEdgeAdj everywhere.
	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// SetVertexAttr stores a metadata attribute on an existing vertex.
// Loaders use it to keep GraphML data keys next to the vertex.
func (g *Graph) SetVertexAttr(id, key, value string) error {
	if g.frozen.Load() {
		return ErrFrozen
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// VertexAttr returns a metadata attribute of a vertex and whether it was set.
func (g *Graph) VertexAttr(id, key string) (string, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return "", false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
//
// On a frozen graph the shared snapshot is returned; callers must treat it as
// read-only. Otherwise a fresh sorted slice is built.
//
// Complexity:
//   - Frozen: O(1). Otherwise: O(V log V) time, O(V) space.
func (g *Graph) Vertices() []string {
	if g.frozen.Load() {
		return g.sortedVertices
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return sortedVertexIDs(g.vertices)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id. For directed graphs this
// is in-degree plus out-degree.
//
// Errors:
//   - ErrEmptyVertexID: if id is empty.
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.degree[id], nil
}

// Freeze makes the graph immutable and precomputes the sorted vertex list and
// per-vertex sorted neighbor lists. Calling Freeze more than once is a no-op.
//
// Complexity:
//   - Time O(V log V + E log d), Space O(V + E).
func (g *Graph) Freeze() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if g.frozen.Load() {
		return
	}

	g.sortedVertices = sortedVertexIDs(g.vertices)
	g.sortedAdj = make(map[string][]string, len(g.vertices))
	for _, id := range g.sortedVertices {
		g.sortedAdj[id] = sortedNeighborIDs(g.adjacencyList[id])
	}
	g.frozen.Store(true)
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen.Load() }

func sortedVertexIDs(vertices map[string]*Vertex) []string {
	ids := make([]string, 0, len(vertices))
	for id := range vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
