package dfs_test

import (
	"fmt"

	"github.com/jfkriz/AdventOfCode-2024/dfs"
	"github.com/jfkriz/AdventOfCode-2024/graph"
)

// ExampleTopologicalSort orders build steps by their dependencies.
func ExampleTopologicalSort() {
	g := graph.NewGraph(graph.WithDirected(true))
	_ = g.AddEdge("fetch", "compile")
	_ = g.AddEdge("compile", "test")
	_ = g.AddEdge("compile", "package")
	_ = g.AddEdge("test", "package")

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output: [fetch compile test package]
}
