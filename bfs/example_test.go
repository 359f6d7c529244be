package bfs_test

import (
	"fmt"

	"github.com/jfkriz/AdventOfCode-2024/bfs"
	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// ExampleShortestPath shows a transient obstacle overlay that leaves the grid untouched.
func ExampleShortestPath() {
	g, _ := grid.FromLines([]string{
		"....",
		".##.",
		"....",
	})
	start, end := grid.Pt(0, 1), grid.Pt(3, 1)

	d, _ := bfs.ShortestPath(g, start, end, bfs.WithWall('#'))
	fmt.Println(d)

	d, _ = bfs.ShortestPath(g, start, end, bfs.WithWall('#'), bfs.WithBlocked(grid.Pt(1, 0)))
	fmt.Println(d)

	d, _ = bfs.ShortestPath(g, start, end, bfs.WithWall('#'), bfs.WithBlocked(grid.Pt(1, 0), grid.Pt(1, 2)))
	fmt.Println(d == bfs.Unreachable)
	// Output:
	// 5
	// 5
	// true
}

func ExampleResult_PathTo() {
	g, _ := grid.New(3, 2, '.')
	res, _ := bfs.Distances(g, grid.Pt(0, 0))
	path, _ := res.PathTo(grid.Pt(2, 1))
	fmt.Println(path)
	// Output: [0,0 1,0 2,0 2,1]
}
