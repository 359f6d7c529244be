// Package dijkstra implements a direction-aware Dijkstra search on grids that
// reports the minimum cost to a goal and the set of every cell lying on any
// minimum-cost path.
//
// The searched state is (cell, facing). From each state the walker may step
// straight ahead, or rotate 90° clockwise or anticlockwise and step. The price
// of each move comes from a caller-supplied CostFunc; StepCost(1, 1000) models
// "1 per step, 1000 per turn".
//
// Multiple optimal paths:
//
//	A state is pruned only when it is reached at a cost strictly greater than
//	the best recorded for it. Arrivals at an equal cost are queued again, each
//	carrying its own trail, so alternate optimal routes are not collapsed.
//	Once the first goal entry pops at cost C, the queue is drained until the
//	first entry costing more than C; every goal entry popped at C contributes
//	its trail to Result.Tiles.
//
// Trails are parent-linked lists: extending a path allocates one node and
// shares the whole prefix, and only goal trails are ever walked.
//
// Complexity:
//
//   - Time:  O(P log P) where P is the number of queued path heads. P is
//     about 3×S (S = 4×W×H states) in corridor mazes, but grows with the
//     number of equal-cost partial routes on open grids with cheap turns.
//   - Space: O(S + P).
//
// Options:
//
//   - Source(p, d):       start cell and facing (required).
//   - Target(p):          single goal cell; WithGoal(fn) for a predicate.
//   - WithWall(v...):     impassable cell values; WithWallFunc(fn) for a predicate.
//   - WithCost(fn):       per-move price. Default StepCost(1, 0).
//   - WithMaxCost(c):     do not queue paths costing more than c (c ≥ 0).
//
// Errors (sentinel):
//
//   - ErrNilGrid            if the grid pointer is nil.
//   - ErrNoSource           if Source was not supplied.
//   - ErrSourceOutOfBounds  if the source lies outside the grid.
//   - ErrNoGoal             if neither Target nor WithGoal was supplied.
//   - ErrNonPositiveCost    if the cost function returned a value ≤ 0.
//   - ErrBadMaxCost         if WithMaxCost received a negative value.
//   - ErrOptionViolation    if wall values do not match the grid's cell type.
//
// Example usage:
//
//	res, err := dijkstra.Search(maze,
//	    dijkstra.Source(start, grid.Right),
//	    dijkstra.Target(end),
//	    dijkstra.WithWall('#'),
//	    dijkstra.WithCost(dijkstra.StepCost(1, 1000)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, len(res.Tiles))
package dijkstra
