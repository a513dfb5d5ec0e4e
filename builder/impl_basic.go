package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/bcapprox/core"
)

const (
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"

	minCompleteNodes = 1
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2

	// CenterVertexID is the fixed hub ID used by Star.
	CenterVertexID = "Center"
)

// Complete returns a Constructor for the complete graph K_n (n ≥ 1).
// Edges are emitted for i<j in ascending order; directed graphs also get j→i.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				v := cfg.idFn(j)
				if err := addEdge(methodComplete, g, cfg, u, v); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(methodComplete, g, cfg, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Path returns a Constructor for the simple path P_n (n ≥ 2) with edges
// (i-1) → i.
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n (n ≥ 3): the path P_n plus
// the closing edge (n-1) → 0.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for a star with hub CenterVertexID and leaves
// cfg.idFn(1..n-1) (n ≥ 2). Directed graphs get spokes in both directions.
//
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addEdge(methodStar, g, cfg, CenterVertexID, leaf); err != nil {
				return err
			}
			if g.Directed() {
				if err := addEdge(methodStar, g, cfg, leaf, CenterVertexID); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridVertexID formats the Grid vertex at row r, column c as "r,c".
func GridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor for a rows×cols 4-neighborhood grid. Vertex IDs
// are GridVertexID(r, c) regardless of the ID scheme. For each cell the right
// edge is emitted before the bottom edge; directed graphs also get reverse
// arcs.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d below %dx%d: %w", methodGrid, rows, cols, minGridDim, minGridDim, ErrTooFewVertices)
		}
		link := func(u, v string) error {
			if err := addEdge(methodGrid, g, cfg, u, v); err != nil {
				return err
			}
			if g.Directed() {
				return addEdge(methodGrid, g, cfg, v, u)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
				if c+1 < cols {
					if err := link(id, GridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(id, GridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
