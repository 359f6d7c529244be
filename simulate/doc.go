// Package simulate moves a single entity around a grid one step at a time,
// pushing movable cells out of its way.
//
// Policies:
//
//   - Block:    anything other than an open cell stops the move.
//   - Push:     single-cell boxes are pushed; a chain of boxes moves together.
//   - PushWide: two-cell boxes (a Left half next to a Right half) are pushed.
//     A vertical push moves both halves, and every box either half touches,
//     in lock-step.
//
// A move either happens completely or not at all. If any cell of the push set
// would be shoved into a wall, or off the grid, nothing changes and the mover
// stays put. Being blocked is a normal outcome, not an error.
//
// The push set is collected breadth-first with an explicit frontier, and cells
// are shifted farthest-first along the move direction so that no cell is
// overwritten before it has been moved.
//
// Errors:
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - ErrDiagonalMove:     only cardinal directions can be stepped.
//   - ErrMoverOutOfBounds: the mover's position is outside the grid.
//
// Complexity: O(k log k) per step, k = cells in the push set.
package simulate
