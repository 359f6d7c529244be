// Package aoc2024 is a grid search and simulation toolkit, together with the
// Advent of Code 2024 puzzles it was built to solve.
//
// What is in here?
//
//	A set of small, single-threaded packages over rectangular 2D grids:
//		• grid      – Point, Direction, Grid[T], parsing and rendering
//		• bfs       – unweighted shortest paths, walls and query-scoped obstacles
//		• dijkstra  – direction-aware weighted search with every optimal tile
//		• region    – 4-connected regions with area, perimeter and sides
//		• simulate  – a mover that pushes single or double-width boxes
//		• graph     – a plain adjacency-set graph keyed by string IDs
//		• dfs       – topological sort with cycle detection
//		• clique    – triangles and maximal cliques (Bron–Kerbosch)
//		• input     – reading lines and blank-line separated sections
//
// Puzzle solvers live under days/dayNN and are registered in package days;
// cmd/aoc2024 runs any of them from the command line.
//
// Conventions:
//
//   - Coordinates are (x, y) with y growing downward; row-major order
//     everywhere.
//   - Searches never mutate their input grid. Callers Clone explicitly.
//   - Invalid arguments fail fast with wrapped sentinel errors; an unreachable
//     target is a sentinel value (Unreachable), not an error.
//   - Functional options (Option func(*Options)) configure every search.
//
// Quick ASCII example, a reindeer maze:
//
//	#####
//	#S.E#   dijkstra.Search with StepCost(1, 1000)
//	#####   cost 2, tiles (1,1) (2,1) (3,1)
//
// Run a day:
//
//	go run ./cmd/aoc2024 -day 16 -input days/day16/testdata/sample.txt -show
package aoc2024
