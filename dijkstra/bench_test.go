package dijkstra_test

import "testing"

// BenchmarkSearch_Maze17 measures the turn-priced search on the 17×17 maze.
func BenchmarkSearch_Maze17(b *testing.B) {
	g := load(b, "maze17.txt")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = maze(b, g, 1000)
	}
}
