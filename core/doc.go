// Package core defines the Graph model consumed by the betweenness estimator:
// a thread-safe, simple (no loops, no parallel edges) graph keyed by string
// vertex IDs, which is built once by a loader or builder and then frozen.
//
// Lifecycle:
//
//	g := core.NewGraph()          // undirected, unweighted by default
//	_, _ = g.AddEdge("A", "B", 0)  // endpoints are created on demand
//	g.Freeze()                     // immutable from here on
//
// After Freeze every mutator returns ErrFrozen, and the read path
// (Vertices, NeighborIDs, Degree) serves precomputed sorted slices without
// taking locks. The estimator, the shortest-path index and the traversals
// rely on that: the Graph Model is read-only input shared by every worker and
// needs no synchronization once frozen.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only "from→to" adjacency; undirected graphs
//	    mirror each edge in adjacencyList[to][from].
//
//	– WithWeighted()
//	    Permits non-zero int64 weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
// Core Methods:
//
//	AddVertex(id string) error                               // O(1)
//	HasVertex(id string) bool                                // O(1)
//	AddEdge(from, to string, weight int64) (string, error)   // O(1)
//	HasEdge(from, to string) bool                            // O(1)
//	Weight(from, to string) (int64, error)                   // O(1)
//	NeighborIDs(id string) ([]string, error)                 // O(d log d), O(1) frozen
//	Degree(id string) (int, error)                           // O(1)
//	Vertices() []string                                      // O(V log V), O(1) frozen
//	Edges() []*Edge                                          // O(E log E)
//	VertexCount(), EdgeCount() int                           // O(1)
//	Freeze(), Frozen()                                       // O(V + E) once
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
//	ErrFrozen              – mutation after Freeze
package core
