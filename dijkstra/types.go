package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// Unreachable is the Result.Cost reported when no goal cell can be reached.
const Unreachable = math.MaxInt

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNoSource indicates that Source was never supplied.
	ErrNoSource = errors.New("dijkstra: source not set")

	// ErrNoGoal indicates that neither Target nor WithGoal was supplied.
	ErrNoGoal = errors.New("dijkstra: goal not set")

	// ErrSourceOutOfBounds indicates that the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrNonPositiveCost indicates that the cost function returned a step cost ≤ 0.
	ErrNonPositiveCost = errors.New("dijkstra: step cost must be positive")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrOptionViolation indicates wall values whose type differs from the grid cells.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// CostFunc returns the price of one move that arrives facing to, having
// previously faced from. Equal directions mean a straight step.
//
// Every move must cost at least 1. Equal-cost arrivals are re-expanded to
// collect all optimal paths, so a free move would let a cycle re-queue
// forever; Search rejects it with ErrNonPositiveCost.
type CostFunc func(from, to grid.Direction) int

// StepCost prices a straight step at straight and a turning step (rotate 90°
// then step) at straight+turn.
func StepCost(straight, turn int) CostFunc {
	return func(from, to grid.Direction) int {
		if from == to {
			return straight
		}

		return straight + turn
	}
}

// State is a position together with the direction the walker is facing.
type State struct {
	Point  grid.Point
	Facing grid.Direction
}

// Options configures the behavior of Search.
//
// Source  – starting cell and facing (required).
// Goal    – predicate over cells; Target(p) is the common single-cell form (required).
// Cost    – per-move price. Default is StepCost(1, 0).
// MaxCost – entries whose accumulated cost would exceed this value are not queued.
//
//	Must be ≥ 0. Default is Unreachable (no cap).
type Options struct {
	Source grid.Point
	Facing grid.Direction
	Goal   func(grid.Point) bool
	Cost   CostFunc

	MaxCost int

	hasSource bool
	walls     []grid.Match
	err       error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with unit straight cost, free turns and no cost cap.
// Source and Goal are unset and must be supplied.
func DefaultOptions() Options {
	return Options{
		Cost:    StepCost(1, 0),
		MaxCost: Unreachable,
	}
}

// Source sets the starting cell and the direction initially faced.
func Source(p grid.Point, facing grid.Direction) Option {
	return func(o *Options) {
		o.Source = p
		o.Facing = facing
		o.hasSource = true
	}
}

// Target makes p the only goal cell.
func Target(p grid.Point) Option {
	return func(o *Options) {
		o.Goal = func(q grid.Point) bool { return q == p }
	}
}

// WithGoal sets an arbitrary goal predicate.
func WithGoal(fn func(grid.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Goal = fn
		}
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

// WithCost replaces the per-move cost function.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithMaxCost caps the accumulated cost explored.
// Negative values are recorded and surface as ErrBadMaxCost from Search.
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxCost, c)
			return
		}
		o.MaxCost = c
	}
}

// Result is the outcome of a Search.
type Result struct {
	// Cost is the minimum cost to any goal cell, or Unreachable.
	Cost int
	// Reached reports whether any goal cell was reached.
	Reached bool
	// Tiles is the union of cells on every minimum-cost path, sorted by Y then X.
	Tiles []grid.Point
	// Ends lists the distinct goal states reached at Cost.
	Ends []State
	// Paths is the number of distinct minimum-cost paths found.
	Paths int
}
