package bfs

import (
	"errors"
	"fmt"
	"math"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// Unreachable is the distance reported for cells the search never reached.
const Unreachable = math.MaxInt

// Sentinel errors for BFS execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start point is outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start out of bounds")

	// ErrEndOutOfBounds is returned when the end point is outside the grid.
	ErrEndOutOfBounds = errors.New("bfs: end out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a cell that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Blocked are extra impassable points for this query only.
	// The grid is never mutated; points outside the grid are ignored.
	Blocked []grid.Point

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Diagonals enables 8-way movement.
	Diagonals bool

	// FilterNeighbor can skip single steps by returning false.
	FilterNeighbor func(from, to grid.Point) bool

	// OnVisit is called when a cell is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p grid.Point, depth int) error

	walls []grid.Match

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no walls, no overlay, cardinal moves,
// no depth limit, no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		FilterNeighbor: func(_, _ grid.Point) bool { return true },
		OnVisit:        func(grid.Point, int) error { return nil },
	}
}

// WithWall marks cells holding any of values as impassable.
func WithWall[T comparable](values ...T) Option {
	return func(o *Options) {
		o.walls = append(o.walls, grid.Is(values...))
	}
}

// WithWallFunc marks cells for which fn returns true as impassable.
func WithWallFunc[T any](fn func(T) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.walls = append(o.walls, grid.Where(fn))
		}
	}
}

// WithBlocked adds transient obstacles for this query only.
func WithBlocked(points ...grid.Point) Option {
	return func(o *Options) {
		o.Blocked = append(o.Blocked, points...)
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithDiagonals allows the 4 diagonal moves in addition to the cardinals.
func WithDiagonals() Option {
	return func(o *Options) {
		o.Diagonals = true
	}
}

// WithFilterNeighbor skips a step when fn returns false.
func WithFilterNeighbor(fn func(from, to grid.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p grid.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal over a grid.
type Result struct {
	// Start is the origin of the search.
	Start grid.Point
	// Order lists reached cells in visit sequence.
	Order []grid.Point

	width  int
	depth  []int // row-major; Unreachable if never enqueued
	parent []int // row-major; -1 for the start and for unreached cells
}

// Distance returns the number of steps from Start to p, or Unreachable.
func (r *Result) Distance(p grid.Point) int {
	i, ok := r.index(p)
	if !ok {
		return Unreachable
	}

	return r.depth[i]
}

// Reached reports whether p was reached.
func (r *Result) Reached(p grid.Point) bool {
	return r.Distance(p) != Unreachable
}

// PathTo reconstructs the path from Start to dest, both inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest grid.Point) ([]grid.Point, error) {
	i, ok := r.index(dest)
	if !ok || r.depth[i] == Unreachable {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := make([]grid.Point, r.depth[i]+1)
	for k := len(path) - 1; k >= 0; k-- {
		path[k] = grid.Pt(i%r.width, i/r.width)
		i = r.parent[i]
	}

	return path, nil
}

func (r *Result) index(p grid.Point) (int, bool) {
	if p.X < 0 || p.X >= r.width || p.Y < 0 || p.Y >= len(r.depth)/r.width {
		return 0, false
	}

	return p.Y*r.width + p.X, true
}
