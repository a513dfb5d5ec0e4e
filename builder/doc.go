// Package builder provides deterministic graph fixtures for tests, examples
// and the generate command.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves the builder configuration from functional options and applies the
// constructors in order. Each topology is a Constructor:
//
//   - Complete(n):        K_n.
//   - Path(n):            P_n, edges i-1 → i.
//   - Cycle(n):           C_n.
//   - Star(n):            hub "Center" plus n-1 leaves.
//   - Grid(rows, cols):   4-neighborhood lattice, vertex IDs "r,c".
//   - RandomSparse(n, p): G(n, p), one Bernoulli trial per admissible pair.
//   - GNM(n, m):          G(n, m), m distinct edges chosen uniformly.
//
// Options:
//
//   - WithSeed / WithRand: RNG for stochastic constructors and weights.
//   - WithIDScheme:        vertex index → ID (DefaultIDFn, SymbolIDFn, ...).
//   - WithWeightFn:        edge weights on weighted graphs.
//
// Determinism: the same inputs, options, seed and constructor order produce
// identical graphs. Constructors never panic; option constructors panic on
// nil arguments.
package builder
