// Command bcapprox runs sampling-based betweenness estimation experiments:
// estimate top-k vertices of graph files against ground truth, average the
// repetitions, and generate random test graphs.
package main

func main() {
	Execute()
}
