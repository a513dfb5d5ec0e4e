package pathindex

import (
	"context"

	"github.com/katalvlaran/bcapprox/bfs"
	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/dijkstra"
)

// BFSSearcher counts hops. Weighted graphs are searched through
// core.UnweightedView, so stored weights are ignored.
type BFSSearcher struct {
	g *core.Graph
}

// NewBFSSearcher returns a hop-count Searcher over g.
func NewBFSSearcher(g *core.Graph) *BFSSearcher {
	if g.Weighted() {
		g = core.UnweightedView(g)
	}

	return &BFSSearcher{g: g}
}

// Search runs bfs.BFS from source.
func (s *BFSSearcher) Search(ctx context.Context, source string) (*Traversal, error) {
	res, err := bfs.BFS(s.g, source, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int64, len(res.Depth))
	for id, d := range res.Depth {
		dist[id] = int64(d)
	}

	return &Traversal{
		Order:  res.Order,
		Dist:   dist,
		Parent: res.Parent,
		Preds:  res.Preds,
		Sigma:  res.Sigma,
	}, nil
}

// EdgeCost is 1 for every edge.
func (s *BFSSearcher) EdgeCost(_, _ string) int64 { return 1 }

// DijkstraSearcher applies a dijkstra.WeightFunc to every edge.
type DijkstraSearcher struct {
	g      *core.Graph
	weight dijkstra.WeightFunc
}

// NewDijkstraSearcher returns a Searcher that costs edges with weight. A nil
// weight uses stored weights on weighted graphs and hop count otherwise.
func NewDijkstraSearcher(g *core.Graph, weight dijkstra.WeightFunc) *DijkstraSearcher {
	if weight == nil {
		weight = dijkstra.StoredWeight
		if !g.Weighted() {
			weight = dijkstra.UnitWeight
		}
	}

	return &DijkstraSearcher{g: g, weight: weight}
}

// Search runs dijkstra.Dijkstra from source.
func (s *DijkstraSearcher) Search(ctx context.Context, source string) (*Traversal, error) {
	res, err := dijkstra.Dijkstra(s.g,
		dijkstra.Source(source),
		dijkstra.WithContext(ctx),
		dijkstra.WithWeightFunc(s.weight),
	)
	if err != nil {
		return nil, err
	}

	return &Traversal{
		Order:  res.Order,
		Dist:   res.Dist,
		Parent: res.Parent,
		Preds:  res.Preds,
		Sigma:  res.Sigma,
	}, nil
}

// EdgeCost returns the weighted cost of from→to.
func (s *DijkstraSearcher) EdgeCost(from, to string) int64 {
	stored, err := s.g.Weight(from, to)
	if err != nil {
		return 0
	}

	return s.weight(from, to, stored)
}
