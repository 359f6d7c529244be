package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrUnknownDirection indicates an unrecognized direction symbol.
	ErrUnknownDirection = errors.New("grid: unknown direction")
	// ErrNotFound indicates a required cell value is absent from the grid.
	ErrNotFound = errors.New("grid: value not found")
)

// Neighbor pairs a candidate point with the direction used to reach it.
type Neighbor struct {
	Dir   Direction
	Point Point
}
