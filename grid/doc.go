// Package grid provides the 2D primitives shared by every search and
// simulation package in this module.
//
// What:
//
//   - Point: immutable integer (x, y) pair with vector arithmetic.
//   - Direction: closed set of 8 compass directions (4 cardinal + 4 diagonal)
//     with a fixed offset table and pure rotation arithmetic.
//   - Grid[T]: rectangular, row-major, 0-indexed table of cells with
//     bounds-checked access, safe defaults, in-place mutation and explicit cloning.
//
// Coordinates:
//
//	x grows to the right, y grows downward. A point is inside a grid iff
//	0 <= x < Width and 0 <= y < Height.
//
//	  (0,0) ──► x
//	    │
//	    ▼
//	    y
//
// Ownership:
//
//	A Grid is owned by the computation that built it. It is not safe for
//	concurrent use. Callers that need a before/after comparison (or that want
//	to run a second puzzle part on pristine data) must call Clone.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: Get/Set on a point outside the grid.
//   - ErrUnknownDirection: ParseDirection received an unknown symbol.
//   - ErrNotFound: a required marker is absent from the grid.
//
// Complexity:
//
//   - Get, Set, Contains, Lookup: O(1).
//   - Neighbors: O(1) (4 or 8 candidates, unfiltered).
//   - Clone, Find, FindAll, Count: O(W×H).
package grid
