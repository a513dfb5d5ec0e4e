package pathindex

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/bcapprox/metrics"
)

// Sentinel errors for index construction and lookup.
var (
	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("pathindex: graph is nil")

	// ErrNilSearcher is returned when New receives a nil Searcher.
	ErrNilSearcher = errors.New("pathindex: searcher is nil")

	// ErrUnknownSource is returned when a lookup names a vertex outside the graph.
	ErrUnknownSource = errors.New("pathindex: unknown source vertex")
)

// Entry is the stored shortest path for one (source, target) pair.
// A nil Path is the Unreachable sentinel.
type Entry struct {
	// Path runs from the source to the target, both inclusive.
	Path []string

	// Dist is the path cost under the Searcher's distance function.
	Dist int64
}

// Unreachable marks a pair with no connecting path.
var Unreachable = Entry{Dist: -1}

// Reachable reports whether e holds a path.
func (e Entry) Reachable() bool { return e.Path != nil }

// reversed returns the same path walked from its far end.
func (e Entry) reversed() Entry {
	if e.Path == nil {
		return e
	}
	rev := make([]string, len(e.Path))
	for i, id := range e.Path {
		rev[len(e.Path)-1-i] = id
	}

	return Entry{Path: rev, Dist: e.Dist}
}

// Tree is the complete shortest-path information of one source.
// A Tree is immutable once returned by the Index and may be shared freely.
type Tree struct {
	// Source is the vertex every path starts at.
	Source string

	// Entries holds one Entry per vertex of the graph.
	Entries map[string]Entry

	// Order lists the reached vertices so that every predecessor precedes
	// its successors.
	Order []string

	// Preds lists, per reached vertex, every predecessor on some
	// minimum-cost path, in sorted order. It covers all equal-cost paths,
	// whichever stored path won the write-once race.
	Preds map[string][]string

	// Sigma counts the minimum-cost paths from Source to each reached vertex.
	Sigma map[string]float64
}

// Entry returns the stored entry for target, or Unreachable if none exists.
func (t *Tree) Entry(target string) Entry {
	e, ok := t.Entries[target]
	if !ok {
		return Unreachable
	}

	return e
}

// Traversal is the outcome of one single-source search.
type Traversal struct {
	Order  []string            // settle order, non-decreasing distance
	Dist   map[string]int64    // reached vertices only
	Parent map[string]string   // single deterministic shortest-path tree
	Preds  map[string][]string // every minimum-cost predecessor
	Sigma  map[string]float64  // minimum-cost path counts
}

// PathTo walks Parent links back from target. It returns nil when target was
// not reached.
func (tr *Traversal) PathTo(target string) []string {
	if _, ok := tr.Dist[target]; !ok {
		return nil
	}
	var rev []string
	for cur := target; ; {
		rev = append(rev, cur)
		prev, ok := tr.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Searcher runs single-source shortest-path traversals under one distance
// function. EdgeCost must agree with the costs Search uses, since the Index
// rebuilds predecessor sets from distances with it for rows it assembles
// without a traversal.
type Searcher interface {
	Search(ctx context.Context, source string) (*Traversal, error)
	EdgeCost(from, to string) int64
}

// Stats is a snapshot of the index counters.
type Stats struct {
	Hits       uint64 // lookups served from a complete Tree
	Misses     uint64 // lookups that had to assemble a Tree
	Traversals uint64 // Searcher invocations
	Sources    int    // sources with a complete Tree
}

// Option configures an Index.
type Option func(*Index)

// WithMetrics attaches Prometheus instruments. A nil value disables them.
func WithMetrics(m *metrics.Metrics) Option {
	return func(ix *Index) {
		ix.metrics = m
	}
}

// WithLogger sets the logger used for traversal diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(ix *Index) {
		if l != nil {
			ix.logger = l
		}
	}
}
