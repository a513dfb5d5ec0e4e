package builder_test

import (
	"fmt"

	"github.com/katalvlaran/bcapprox/builder"
)

// ExampleBuildGraph composes a star and prints its shape.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Star(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// [1 2 3 Center]
	// edges: 3
}
