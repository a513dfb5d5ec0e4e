package pathindex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/metrics"
)

// Index memoizes shortest-path trees per source for one immutable graph.
type Index struct {
	g        *core.Graph
	nodes    []string
	directed bool
	search   Searcher
	metrics  *metrics.Metrics
	logger   *slog.Logger

	// mu guards the inner entry maps and trees. The outer entries map is
	// fixed after New.
	mu      sync.RWMutex
	entries map[string]map[string]Entry
	trees   map[string]*Tree
	group   singleflight.Group

	hits       atomic.Uint64
	misses     atomic.Uint64
	traversals atomic.Uint64
}

// New creates an empty Index over the vertices of g.
//
// g must not be mutated for the lifetime of the Index; freezing it first is
// the expected usage.
func New(g *core.Graph, search Searcher, opts ...Option) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if search == nil {
		return nil, ErrNilSearcher
	}

	nodes := g.Vertices()
	ix := &Index{
		g:        g,
		nodes:    nodes,
		directed: g.Directed(),
		search:   search,
		logger:   slog.New(slog.DiscardHandler),
		entries:  make(map[string]map[string]Entry, len(nodes)),
		trees:    make(map[string]*Tree, len(nodes)),
	}
	for _, id := range nodes {
		ix.entries[id] = map[string]Entry{id: {Path: []string{id}}}
	}
	for _, opt := range opts {
		opt(ix)
	}

	return ix, nil
}

// GetOrCompute returns the Tree of source, computing it on first use.
//
// Repeated calls return the identical *Tree and perform no traversal. When
// every entry of source is already present (from reverse storage or pair
// propagation), the Tree is assembled without a traversal either.
//
// Concurrent callers missing on the same source share one computation. If
// that computation fails because the context of the caller that started it
// was cancelled, callers whose own context is still live start a new one;
// any other failure reaches every caller and nothing is stored.
func (ix *Index) GetOrCompute(ctx context.Context, source string) (*Tree, error) {
	if _, ok := ix.entries[source]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	ix.mu.RLock()
	tree := ix.trees[source]
	ix.mu.RUnlock()
	if tree != nil {
		ix.hits.Add(1)
		ix.metrics.ObserveLookup(true)

		return tree, nil
	}

	ix.misses.Add(1)
	ix.metrics.ObserveLookup(false)
	for {
		v, err, _ := ix.group.Do(source, func() (interface{}, error) {
			return ix.fill(ctx, source)
		})
		if err == nil {
			return v.(*Tree), nil
		}
		if ctx.Err() != nil || !isContextErr(err) {
			return nil, err
		}
		ix.logger.Debug("index fill cancelled by another caller, retrying", "source", source)
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// fill builds and publishes the Tree of source. Only one fill per source runs
// at a time.
func (ix *Index) fill(ctx context.Context, source string) (*Tree, error) {
	ix.mu.RLock()
	tree := ix.trees[source]
	complete := len(ix.entries[source]) == len(ix.nodes)
	ix.mu.RUnlock()
	if tree != nil {
		return tree, nil
	}

	if complete {
		tree, err := ix.assemble(source)
		if err != nil || tree != nil {
			return tree, err
		}
	}

	start := time.Now()
	trav, err := ix.search.Search(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("pathindex: traversal from %q: %w", source, err)
	}
	ix.traversals.Add(1)
	ix.metrics.ObserveTraversal(time.Since(start))

	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.store(source, trav)
	tree = ix.publish(source, trav.Order, sortedPreds(trav.Preds), trav.Sigma)
	ix.logger.Debug("index traversal stored",
		"source", source,
		"reached", len(trav.Dist),
		"elapsed", time.Since(start),
	)

	return tree, nil
}

// assemble builds the Tree of source from its complete stored row. It
// returns a nil Tree when the row has a zero-cost edge between two equally
// distant vertices, since only a traversal can order such a pair.
func (ix *Index) assemble(source string) (*Tree, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	row := ix.entries[source]
	preds, ok, err := ix.predecessors(row)
	if err != nil {
		return nil, fmt.Errorf("pathindex: predecessors of %q: %w", source, err)
	}
	if !ok {
		return nil, nil
	}
	order := distanceOrder(row)
	tree := ix.publish(source, order, preds, countPaths(source, order, preds))
	ix.logger.Debug("index tree assembled from stored entries", "source", source)

	return tree, nil
}

// publish freezes the complete entry row of source into a Tree. Callers hold
// ix.mu for writing.
func (ix *Index) publish(source string, order []string, preds map[string][]string, sigma map[string]float64) *Tree {
	tree := &Tree{
		Source:  source,
		Entries: ix.entries[source],
		Order:   order,
		Preds:   preds,
		Sigma:   sigma,
	}
	ix.trees[source] = tree

	return tree
}

// predecessors rebuilds the minimum-cost DAG of a complete row from its
// distances: p precedes w when an edge p→w closes the distance gap exactly.
// The boolean is false when such an edge costs zero.
//
// Complexity: O(V + E).
func (ix *Index) predecessors(row map[string]Entry) (map[string][]string, bool, error) {
	preds := make(map[string][]string, len(row))
	for _, p := range ix.nodes {
		ep := row[p]
		if !ep.Reachable() {
			continue
		}
		neighbors, err := ix.g.NeighborIDs(p)
		if err != nil {
			return nil, false, err
		}
		for _, w := range neighbors {
			ew := row[w]
			if !ew.Reachable() {
				continue
			}
			c := ix.search.EdgeCost(p, w)
			if ep.Dist+c != ew.Dist {
				continue
			}
			if c == 0 {
				return nil, false, nil
			}
			preds[w] = append(preds[w], p)
		}
	}

	return preds, true, nil
}

// distanceOrder lists the reachable vertices of row by (distance, ID).
func distanceOrder(row map[string]Entry) []string {
	order := make([]string, 0, len(row))
	for id, e := range row {
		if e.Reachable() {
			order = append(order, id)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := row[order[i]].Dist, row[order[j]].Dist
		if di != dj {
			return di < dj
		}

		return order[i] < order[j]
	})

	return order
}

// countPaths runs the forward pass: sigma[source] = 1 and
// sigma[w] = Σ sigma[p] over preds p of w, in order.
func countPaths(source string, order []string, preds map[string][]string) map[string]float64 {
	sigma := make(map[string]float64, len(order))
	sigma[source] = 1
	for _, w := range order {
		if w == source {
			continue
		}
		var n float64
		for _, p := range preds[w] {
			n += sigma[p]
		}
		sigma[w] = n
	}

	return sigma
}

// sortedPreds returns a copy of preds with every list sorted.
func sortedPreds(preds map[string][]string) map[string][]string {
	out := make(map[string][]string, len(preds))
	for w, ps := range preds {
		cp := append([]string(nil), ps...)
		sort.Strings(cp)
		out[w] = cp
	}

	return out
}

// store writes every entry produced by a traversal from source. Callers hold
// ix.mu for writing.
func (ix *Index) store(source string, trav *Traversal) {
	for _, t := range ix.nodes {
		path := trav.PathTo(t)
		if path == nil {
			ix.put(source, t, Unreachable)
			continue
		}
		ix.put(source, t, Entry{Path: path, Dist: trav.Dist[t]})

		// Every edge of a shortest path is itself a shortest path.
		for i := 0; i+1 < len(path); i++ {
			a, b := path[i], path[i+1]
			ix.put(a, b, Entry{Path: []string{a, b}, Dist: trav.Dist[b] - trav.Dist[a]})
		}
	}
}

// put stores e for (s, t) and, on undirected graphs, its reverse for (t, s).
// Existing entries are never overwritten.
func (ix *Index) put(s, t string, e Entry) {
	if _, ok := ix.entries[s][t]; !ok {
		ix.entries[s][t] = e
	}
	if ix.directed {
		return
	}
	if _, ok := ix.entries[t][s]; !ok {
		ix.entries[t][s] = e.reversed()
	}
}

// Nodes returns the vertex IDs of the indexed graph in sorted order.
// The slice is shared and must not be modified.
func (ix *Index) Nodes() []string { return ix.nodes }

// Directed reports whether the indexed graph is directed.
func (ix *Index) Directed() bool { return ix.directed }

// Stats returns a snapshot of the hit, miss and traversal counters.
func (ix *Index) Stats() Stats {
	ix.mu.RLock()
	sources := len(ix.trees)
	ix.mu.RUnlock()

	return Stats{
		Hits:       ix.hits.Load(),
		Misses:     ix.misses.Load(),
		Traversals: ix.traversals.Load(),
		Sources:    sources,
	}
}
