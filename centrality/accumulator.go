package centrality

import "github.com/katalvlaran/bcapprox/pathindex"

// Dependency returns the sigma-weighted dependency of target for the source
// of tree. Unreachable targets and the source itself contribute zero.
//
// It is the backward half of Brandes' algorithm over the Tree's order, path
// counts and predecessor sets:
//
//	dependency[p] += sigma[p]/sigma[w] · (1 + dependency[w])  for each pred p of w
//
// Vertices are finalized in reverse order, so each is complete before any of
// its predecessors is touched, and the pass stops at target since nothing
// earlier in the order can feed it.
//
// Complexity: O(V + E) time, O(V) space.
func Dependency(tree *pathindex.Tree, target string) float64 {
	if target == tree.Source {
		return 0
	}
	if _, reached := tree.Sigma[target]; !reached {
		return 0
	}

	dep := make(map[string]float64, len(tree.Order))
	for i := len(tree.Order) - 1; i >= 0; i-- {
		w := tree.Order[i]
		if w == target {
			break
		}
		sw := tree.Sigma[w]
		if sw == 0 {
			continue
		}
		for _, p := range tree.Preds[w] {
			dep[p] += tree.Sigma[p] / sw * (1 + dep[w])
		}
	}

	return dep[target]
}

// PathCount returns how many stored paths from the source of tree pass
// strictly through target. Only one path per pair is stored, so equal-cost
// alternatives are ignored and the count is biased toward whichever path the
// index kept.
//
// Complexity: O(Σ path length).
func PathCount(tree *pathindex.Tree, target string) float64 {
	if target == tree.Source {
		return 0
	}
	var count int
	for t, e := range tree.Entries {
		if t == target || len(e.Path) < 3 {
			continue
		}
		for _, id := range e.Path[1 : len(e.Path)-1] {
			if id == target {
				count++
				break
			}
		}
	}

	return float64(count)
}
