package builder

import (
	"fmt"

	"github.com/katalvlaran/bcapprox/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodGNM          = "GNM"

	minRandomNodes = 1
)

// RandomSparse returns a Constructor for an Erdős–Rényi G(n, p) graph: each
// admissible pair is included independently with probability p.
//
// Undirected graphs try unordered pairs {i,j}, i<j; directed graphs try
// ordered pairs (i,j), i≠j. Trials run in ascending (i, j) order, so the
// result is fixed for a fixed seed. An RNG is required only for 0 < p < 1.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		include := func() bool {
			if cfg.rng == nil {
				return p == 1
			}

			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !include() {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// GNM returns a Constructor for a uniform G(n, m) graph: exactly m distinct
// edges chosen uniformly among all admissible pairs (unordered for
// undirected graphs, ordered for directed ones). Requires an RNG.
//
// Sparse requests use rejection sampling; requests above half the pair space
// shuffle the full pair list instead. Edges are inserted in the order drawn.
//
// Complexity: O(n + m) expected when m is small against n², O(n²) otherwise.
func GNM(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodGNM, n, minRandomNodes, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", methodGNM, m, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1)
		if !g.Directed() {
			maxEdges /= 2
		}
		if m > maxEdges {
			return fmt.Errorf("%s: m=%d > %d: %w", methodGNM, m, maxEdges, ErrTooManyEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodGNM, ErrNeedRandSource)
		}
		if err := addVertices(methodGNM, g, cfg, n); err != nil {
			return err
		}

		if 2*m > maxEdges {
			return gnmDense(g, cfg, n, m)
		}
		for added := 0; added < m; {
			u, v := cfg.idFn(cfg.rng.Intn(n)), cfg.idFn(cfg.rng.Intn(n))
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if err := addEdge(methodGNM, g, cfg, u, v); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}

// gnmDense picks m pairs with a partial Fisher–Yates shuffle of every
// admissible pair.
func gnmDense(g *core.Graph, cfg builderConfig, n, m int) error {
	pairs := make([][2]int, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!g.Directed() && j < i) {
				continue
			}
			pairs = append(pairs, [2]int{i, j})
		}
	}
	for k := 0; k < m; k++ {
		r := k + cfg.rng.Intn(len(pairs)-k)
		pairs[k], pairs[r] = pairs[r], pairs[k]
		if err := addEdge(methodGNM, g, cfg, cfg.idFn(pairs[k][0]), cfg.idFn(pairs[k][1])); err != nil {
			return err
		}
	}

	return nil
}
