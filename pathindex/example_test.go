package pathindex_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bcapprox/core"
	"github.com/katalvlaran/bcapprox/pathindex"
)

// ExampleIndex_GetOrCompute shows that a repeated lookup is served from the index.
func ExampleIndex_GetOrCompute() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	g.Freeze()

	ix, _ := pathindex.New(g, pathindex.NewBFSSearcher(g))
	tree, _ := ix.GetOrCompute(context.Background(), "A")
	_, _ = ix.GetOrCompute(context.Background(), "A")

	st := ix.Stats()
	fmt.Println(tree.Entry("D").Path, tree.Entry("D").Dist)
	fmt.Printf("hits=%d misses=%d traversals=%d\n", st.Hits, st.Misses, st.Traversals)
	// Output:
	// [A B C D] 3
	// hits=1 misses=1 traversals=1
}
