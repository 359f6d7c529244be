package simulate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// Sentinel errors for stepping.
var (
	ErrNilGrid          = errors.New("simulate: grid is nil")
	ErrDiagonalMove     = errors.New("simulate: diagonal moves are not supported")
	ErrMoverOutOfBounds = errors.New("simulate: mover out of bounds")
)

// Policy selects what the mover may push.
type Policy int

const (
	// Block never pushes.
	Block Policy = iota
	// Push moves single-cell boxes.
	Push
	// PushWide moves two-cell boxes made of a Left and a Right half.
	PushWide
)

func (p Policy) String() string {
	switch p {
	case Block:
		return "Block"
	case Push:
		return "Push"
	case PushWide:
		return "PushWide"
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// Stepper describes the cell vocabulary of one simulation.
type Stepper[T comparable] struct {
	Open  T // free floor
	Wall  T // immovable obstacle
	Box   T // single-cell box (Push)
	Left  T // left half of a wide box (PushWide)
	Right T // right half of a wide box (PushWide)

	// Mover is written to the mover's cell when DrawMover is set, and the
	// vacated cell becomes Open.
	Mover     T
	DrawMover bool

	Policy Policy
}

// Step attempts one move from pos in direction d, mutating g in place, and
// returns the mover's new position (pos itself when blocked).
func (s Stepper[T]) Step(g *grid.Grid[T], pos grid.Point, d grid.Direction) (grid.Point, error) {
	if g == nil {
		return pos, ErrNilGrid
	}
	if d.Diagonal() {
		return pos, fmt.Errorf("%w: %v", ErrDiagonalMove, d)
	}
	if !g.Contains(pos) {
		return pos, fmt.Errorf("%w: %v", ErrMoverOutOfBounds, pos)
	}

	next := pos.Move(d)
	v, ok := g.Lookup(next)
	switch {
	case !ok || v == s.Wall:
		return pos, nil
	case v == s.Open:
	case s.pushable(v):
		cells, free := s.pushSet(g, next, d)
		if !free {
			return pos, nil
		}
		if err := s.shift(g, cells, d); err != nil {
			return pos, err
		}
	default:
		return pos, nil
	}

	if s.DrawMover {
		if err := g.Set(pos, s.Open); err != nil {
			return pos, err
		}
		if err := g.Set(next, s.Mover); err != nil {
			return pos, err
		}
	}

	return next, nil
}

// Run applies moves in order and returns the final position.
func (s Stepper[T]) Run(g *grid.Grid[T], pos grid.Point, moves []grid.Direction) (grid.Point, error) {
	for i, d := range moves {
		var err error
		if pos, err = s.Step(g, pos, d); err != nil {
			return pos, fmt.Errorf("move %d: %w", i, err)
		}
	}

	return pos, nil
}

func (s Stepper[T]) pushable(v T) bool {
	switch s.Policy {
	case Push:
		return v == s.Box
	case PushWide:
		return v == s.Left || v == s.Right
	}

	return false
}

// pushSet collects every cell that must move when first is pushed along d.
// It reports false when some member would be pushed into a wall, off the grid,
// or into a cell that is neither open nor pushable.
func (s Stepper[T]) pushSet(g *grid.Grid[T], first grid.Point, d grid.Direction) ([]grid.Point, bool) {
	var cells []grid.Point
	seen := mapset.New[grid.Point]()
	frontier := queue.New[grid.Point]()

	add := func(p grid.Point) {
		if !seen.Has(p) {
			seen.Put(p)
			cells = append(cells, p)
			frontier.Enqueue(p)
		}
	}
	add(first)

	vertical := d == grid.Up || d == grid.Down
	for !frontier.Empty() {
		p := frontier.Dequeue()
		v, _ := g.Lookup(p)

		// the other half of a wide box travels with it
		if vertical && s.Policy == PushWide {
			switch v {
			case s.Left:
				add(p.Move(grid.Right))
			case s.Right:
				add(p.Move(grid.Left))
			}
		}

		t := p.Move(d)
		tv, ok := g.Lookup(t)
		switch {
		case !ok || tv == s.Wall:
			return nil, false
		case tv == s.Open:
		case s.pushable(tv):
			add(t)
		default:
			return nil, false
		}
	}

	return cells, true
}

// shift moves cells one step along d, farthest first. pushSet has already
// checked every destination, so an error here means the grid changed between
// the two calls.
func (s Stepper[T]) shift(g *grid.Grid[T], cells []grid.Point, d grid.Direction) error {
	off := d.Offset()
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].X*off.X+cells[i].Y*off.Y > cells[j].X*off.X+cells[j].Y*off.Y
	})
	for _, p := range cells {
		v, err := g.Get(p)
		if err != nil {
			return err
		}
		if err = g.Set(p.Move(d), v); err != nil {
			return err
		}
		if err = g.Set(p, s.Open); err != nil {
			return err
		}
	}

	return nil
}
