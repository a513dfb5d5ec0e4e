// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly. Ties of
// equal cost are tracked, so Sigma and Preds describe the full minimum-cost DAG.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by vertex ID so settle order is deterministic.
//   - Negative costs are detected during relaxation and fail the run.
//   - Zero-cost edges are allowed. Preds only ever names settled vertices, so
//     settle order is a topological order of the DAG and Sigma is final when
//     a vertex settles.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/bcapprox/core"
)

// Dijkstra computes shortest distances from Options.Source to every reachable
// vertex of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must be weighted, or a WeightFunc supplied (ErrUnweightedGraph).
//  5. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Weight == nil {
		if !g.Weighted() {
			return nil, ErrUnweightedGraph
		}
		cfg.Weight = StoredWeight
	}
	if !g.HasVertex(cfg.Source) {
		return nil, ErrVertexNotFound
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		settled: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Dist:   make(map[string]int64, n),
			Parent: make(map[string]string, n),
			Sigma:  make(map[string]float64, n),
			Preds:  make(map[string][]string, n),
		},
	}
	r.res.Dist[cfg.Source] = 0
	r.res.Sigma[cfg.Source] = 1
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	settled map[string]bool
	pq      nodePQ
	res     *Result
}

// process repeatedly extracts the closest unsettled vertex and relaxes its
// outgoing edges until the heap is empty. Candidates beyond MaxDistance are
// never pushed, so every popped entry is within range.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.id] || item.dist != r.res.Dist[item.id] {
			continue
		}
		r.settled[item.id] = true
		r.res.Order = append(r.res.Order, item.id)

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u. A strictly shorter candidate resets the
// neighbor's Sigma and Preds; an equal candidate extends them.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, v := range neighbors {
		if r.settled[v] {
			continue
		}
		stored, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight of %s→%s: %w", u, v, err)
		}
		w := r.options.Weight(u, v, stored)
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		cur, seen := r.res.Dist[v]
		switch {
		case !seen || nd < cur:
			r.res.Dist[v] = nd
			r.res.Parent[v] = u
			r.res.Sigma[v] = r.res.Sigma[u]
			r.res.Preds[v] = []string{u}
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		case nd == cur:
			r.res.Sigma[v] += r.res.Sigma[u]
			r.res.Preds[v] = append(r.res.Preds[v], u)
		}
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem, ordered by (dist, id) ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
