package centrality

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/metrics"
	"github.com/katalvlaran/bcapprox/pathindex"
)

// ErrIndexMismatch is returned when the index was built over a different
// vertex set than the graph handed to NewEstimator.
var ErrIndexMismatch = errors.New("centrality: index does not cover the graph")

// Estimator runs the adaptive sampling loop for target vertices of one graph,
// sharing one shortest-path index across all of them.
type Estimator struct {
	g     *core.Graph
	ix    *pathindex.Index
	opts  Options
	nodes []string
	pos   map[string]int
}

// NewEstimator validates opts and binds g to ix.
//
// Errors:
//   - ErrNilGraph, ErrNilIndex for nil inputs.
//   - ErrIndexMismatch if ix was built over another vertex set.
//   - ErrOptionViolation (possibly with ErrUnknownMode) for invalid options.
func NewEstimator(g *core.Graph, ix *pathindex.Index, opts ...Option) (*Estimator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ix == nil {
		return nil, ErrNilIndex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	nodes := ix.Nodes()
	if len(nodes) != g.VertexCount() {
		return nil, fmt.Errorf("%w: index has %d vertices, graph has %d", ErrIndexMismatch, len(nodes), g.VertexCount())
	}
	pos := make(map[string]int, len(nodes))
	for i, id := range nodes {
		pos[id] = i
	}

	return &Estimator{g: g, ix: ix, opts: o, nodes: nodes, pos: pos}, nil
}

// Options returns the effective options of e.
func (e *Estimator) Options() Options { return e.opts }

// Estimate runs the sampling loop for target.
//
// Implementation:
//   - Stage 1: degree(target) ≤ 1 ⇒ Converged with an exact zero and k = 0.
//   - Stage 2: draw a source uniformly with replacement from the target's own
//     random stream, fetch its Tree, add the contribution to S and bump k.
//   - Stage 3: stop once S ≥ c·n (Converged) or k = MaxSamples
//     (DidNotConverge), then normalize (S, k, n).
//
// Context cancellation is checked before every sample and is the only error
// the loop itself produces. DidNotConverge is reported in the Result, not as
// an error.
//
// Complexity: O(k·(V + E)) time in the worst case, O(V) extra space per sample.
func (e *Estimator) Estimate(ctx context.Context, target string) (Result, error) {
	start := time.Now()
	pos, ok := e.pos[target]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	deg, err := e.g.Degree(target)
	if err != nil {
		return Result{}, fmt.Errorf("centrality: degree of %q: %w", target, err)
	}

	n := len(e.nodes)
	res := Result{
		Node:      target,
		Degree:    deg,
		Threshold: e.opts.Threshold * float64(n),
		Outcome:   Converged,
	}
	if deg <= 1 {
		res.ShortCircuited = true
		res.Elapsed = time.Since(start)
		e.report(res)

		return res, nil
	}

	rng := targetRNG(e.opts.Seed, pos)
	for res.Sum < res.Threshold {
		if res.Samples >= e.opts.MaxSamples {
			res.Outcome = DidNotConverge
			break
		}
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("centrality: estimating %q: %w", target, err)
		}

		source := e.nodes[rng.Intn(n)]
		tree, err := e.ix.GetOrCompute(ctx, source)
		if err != nil {
			return Result{}, fmt.Errorf("centrality: estimating %q: %w", target, err)
		}
		res.SSPCount++
		res.Sum += e.contribution(tree, target)
		res.Samples++

		if e.opts.OnSample != nil {
			e.opts.OnSample(target, res.Sum, res.Samples)
		}
	}

	res.Estimates = Normalize(res.Sum, res.Samples, n)
	res.Elapsed = time.Since(start)
	e.report(res)

	return res, nil
}

// contribution dispatches on the configured Mode.
func (e *Estimator) contribution(tree *pathindex.Tree, target string) float64 {
	if e.opts.Mode == ModePathCount {
		return PathCount(tree, target)
	}

	return Dependency(tree, target)
}

// report logs and records one finalized Result.
func (e *Estimator) report(res Result) {
	outcome := metrics.OutcomeConverged
	switch {
	case res.ShortCircuited:
		outcome = metrics.OutcomeShortCircuit
	case res.Outcome == DidNotConverge:
		outcome = metrics.OutcomeDidNotConverge
	}
	e.opts.Metrics.ObserveTarget(outcome, res.Samples, res.Elapsed)

	if res.Outcome == DidNotConverge {
		e.opts.Logger.Warn("target did not converge",
			"node", res.Node,
			"samples", res.Samples,
			"sum", res.Sum,
			"threshold", res.Threshold,
		)
		return
	}
	e.opts.Logger.Debug("target estimated",
		"node", res.Node,
		"degree", res.Degree,
		"samples", res.Samples,
		"raw", res.Estimates.Raw,
		"elapsed", res.Elapsed,
	)
}
