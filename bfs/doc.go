// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - ShortestPath answers a single start→end query and stops early.
//   - Distances returns a Result with the full distance table:
//   - Order: visit sequence
//   - Distance(p): steps from start, or Unreachable
//   - PathTo(p): one shortest path, start and p inclusive
//   - Walls are given as cell values (WithWall) or a cell predicate
//     (WithWallFunc); WithBlocked adds query-scoped obstacles on top.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Overlays
//
//	WithBlocked never mutates the grid. Each call builds its own overlay set,
//	distance table and queue, so the same grid can be searched repeatedly
//	against growing obstacle lists without state leaking between calls.
//	Overlay points outside the grid are ignored. The start cell is always
//	enterable; a blocked or walled end is simply Unreachable.
//
// Determinism
//
//	Neighbours are expanded clockwise from Up, so Order and PathTo are
//	reproducible for a given grid and option set.
//
// Complexity (N = W×H)
//
//   - Time:   O(N)   (each cell enqueued at most once)
//   - Memory: O(N)   (distance and parent tables, queue)
//
// Usage
//
//	steps, err := bfs.ShortestPath(g, start, end,
//	    bfs.WithWall('#'),
//	    bfs.WithBlocked(fallen...),
//	)
//	if steps == bfs.Unreachable {
//	    // no path
//	}
//
// Errors
//
//   - ErrNilGrid            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if start is outside the grid.
//   - ErrEndOutOfBounds     if end is outside the grid.
//   - ErrOptionViolation    for invalid options (negative MaxDepth, wall
//     values of a type other than the grid's cells).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
