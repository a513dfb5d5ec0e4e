package loader

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/bcapprox/core"
)

// graphBuilder wraps a core.Graph under construction and counts what it
// skipped.
type graphBuilder struct {
	g        *core.Graph
	weighted bool
	loops    int
	repeats  int
}

func newGraphBuilder(o Options, directed bool) *graphBuilder {
	gopts := []core.GraphOption{core.WithDirected(directed)}
	if o.Weighted {
		gopts = append(gopts, core.WithWeighted())
	}

	return &graphBuilder{g: core.NewGraph(gopts...), weighted: o.Weighted}
}

func (b *graphBuilder) vertex(id string) error {
	return b.g.AddVertex(id)
}

// edge adds u→v. weight is the raw weight text and may be empty.
func (b *graphBuilder) edge(u, v, weight string) error {
	var w int64
	if b.weighted {
		var err error
		if w, err = parseWeight(weight); err != nil {
			return err
		}
	}
	_, err := b.g.AddEdge(u, v, w)
	switch {
	case errors.Is(err, core.ErrLoopNotAllowed):
		b.loops++
		if err := b.g.AddVertex(u); err != nil {
			return err
		}
	case errors.Is(err, core.ErrMultiEdgeNotAllowed):
		b.repeats++
	case err != nil:
		return err
	}

	return nil
}

// finish freezes the graph and logs what was skipped.
func (b *graphBuilder) finish(o Options, format Format) *core.Graph {
	b.g.Freeze()
	o.Logger.Debug("graph loaded",
		"format", format.String(),
		"vertices", b.g.VertexCount(),
		"edges", b.g.EdgeCount(),
		"skipped_loops", b.loops,
		"skipped_repeats", b.repeats,
	)

	return b.g
}

// parseWeight reads a decimal weight and rounds it. An empty string means
// DefaultWeight. Weights that round to zero are rejected: a zero-cost edge
// merges its endpoints into one distance class.
func parseWeight(s string) (int64, error) {
	if s == "" {
		return DefaultWeight, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadWeight, s, err)
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q", ErrBadWeight, s)
	}

	w := int64(math.Round(f))
	if w == 0 {
		return 0, fmt.Errorf("%w: %q rounds to zero", ErrBadWeight, s)
	}

	return w, nil
}

// DefaultWeight is used for weighted graphs whose edge carries no weight.
const DefaultWeight int64 = 1
