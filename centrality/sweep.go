package centrality

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sweep estimates every target, running up to Options.Workers targets at a
// time over the shared index. Results are returned in the order of targets.
//
// Each target samples from its own seeded stream and, in ModeDependency, the
// contribution depends only on distances, so the (S, k) trajectory of a target
// is the same for any worker count. ModePathCount reads the stored paths,
// which may differ with scheduling. A DidNotConverge target does not
// stop the sweep; the first real error (unknown target, cancellation) cancels
// the remaining work and is returned.
func (e *Estimator) Sweep(ctx context.Context, targets []string) ([]Result, error) {
	results := make([]Result, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i, target := range targets {
		g.Go(func() error {
			res, err := e.Estimate(gctx, target)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
