// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge costs. Edge cost
// is pluggable through WeightFunc, which is how the shortest-path index
// supports distance functions other than hop count.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– WeightFunc:       maps (from, to, stored weight) to a traversal cost.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is unweighted and no WeightFunc was given.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge cost is encountered.
//	– ErrOptionViolation if MaxDistance < 0 or InfEdgeThreshold <= 0.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph carries no weights and no
	// WeightFunc was supplied to derive them.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted or a WeightFunc supplied")

	// ErrVertexNotFound indicates that the specified source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// WeightFunc maps an edge (from, to, stored weight) to its traversal cost.
type WeightFunc func(from, to string, weight int64) int64

// StoredWeight uses the weight stored on the edge.
func StoredWeight(_, _ string, weight int64) int64 { return weight }

// UnitWeight gives every edge cost 1 (hop count).
func UnitWeight(_, _ string, _ int64) int64 { return 1 }

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Ctx              context.Context
	Source           string     // The ID of the source vertex
	Weight           WeightFunc // Edge cost; nil means StoredWeight on weighted graphs
	MaxDistance      int64      // Maximum distance to explore
	InfEdgeThreshold int64      // Cost threshold above which edges are non-traversable

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeightFunc overrides how edge costs are derived.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values are recorded and surface as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// considered non-traversable. Non-positive values surface as ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// background context, no WeightFunc, no distance cap, no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Ctx:              context.Background(),
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result holds the outcome of a Dijkstra run. Only reached vertices appear
// in the maps.
//   - Order: vertices in settle order (non-decreasing distance).
//   - Dist: minimum cost from the source.
//   - Parent: the predecessor that first produced the final distance.
//   - Sigma: number of distinct minimum-cost paths from the source.
//   - Preds: every predecessor lying on some minimum-cost path.
type Result struct {
	Order  []string
	Dist   map[string]int64
	Parent map[string]string
	Sigma  map[string]float64
	Preds  map[string][]string
}

// PathTo reconstructs the Parent path from the source to dest, inclusive.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	var rev []string
	for cur := dest; ; {
		rev = append(rev, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
