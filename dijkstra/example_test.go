package dijkstra_test

import (
	"fmt"

	"github.com/jfkriz/AdventOfCode-2024/dijkstra"
	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// ExampleSearch shows that a route needing one turn beats one needing two.
func ExampleSearch() {
	g, _ := grid.FromLines([]string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	})
	res, err := dijkstra.Search(g,
		dijkstra.Source(grid.Pt(1, 1), grid.Right),
		dijkstra.Target(grid.Pt(3, 3)),
		dijkstra.WithWall('#'),
		dijkstra.WithCost(dijkstra.StepCost(1, 1000)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, res.Paths, len(res.Tiles))
	// Output: 1004 1 5
}
