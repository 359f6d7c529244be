// Package day14 solves "Restroom Redoubt": robots patrolling a wrapping
// room, first scored by quadrant and then watched until they draw a tree.
package day14

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// Errors returned by the solver.
var (
	ErrMalformed       = errors.New("day14: malformed robot")
	ErrOptionViolation = errors.New("day14: invalid option supplied")
	ErrNoTree          = errors.New("day14: robots never line up")
)

const (
	empty = '.'
	robot = '#'
)

// Options configures the room.
type Options struct {
	Width, Height int
	// Run is how many robots side by side in one row count as the tree.
	Run int

	err error
}

// Option is a functional option for NewSolver.
type Option func(*Options)

// DefaultOptions returns the 101×103 room and a 31-robot run.
func DefaultOptions() Options {
	return Options{Width: 101, Height: 103, Run: 31}
}

// WithSize sets the room dimensions. Both must be positive.
func WithSize(w, h int) Option {
	return func(o *Options) {
		if w <= 0 || h <= 0 {
			o.err = fmt.Errorf("%w: size %dx%d", ErrOptionViolation, w, h)
			return
		}
		o.Width, o.Height = w, h
	}
}

// WithRun sets the row run length PartTwo waits for. Must be ≥ 1.
func WithRun(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: run %d", ErrOptionViolation, n)
			return
		}
		o.Run = n
	}
}

// Robot is a starting position and a per-second velocity.
type Robot struct {
	Pos, Vel grid.Point
}

// Solver holds the robots and the room they patrol.
type Solver struct {
	cfg    Options
	robots []Robot
}

// NewSolver parses one "p=x,y v=dx,dy" robot per line. Starting positions
// must lie inside the room.
func NewSolver(lines []string, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	s := &Solver{cfg: cfg}
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		var r Robot
		if _, err := fmt.Sscanf(l, "p=%d,%d v=%d,%d", &r.Pos.X, &r.Pos.Y, &r.Vel.X, &r.Vel.Y); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, l, err)
		}
		if r.Pos.X < 0 || r.Pos.X >= cfg.Width || r.Pos.Y < 0 || r.Pos.Y >= cfg.Height {
			return nil, fmt.Errorf("%w: %v outside %dx%d", ErrMalformed, r.Pos, cfg.Width, cfg.Height)
		}
		s.robots = append(s.robots, r)
	}

	return s, nil
}

// At returns where every robot stands after t seconds.
func (s *Solver) At(t int) []grid.Point {
	w, h := s.cfg.Width, s.cfg.Height
	out := make([]grid.Point, len(s.robots))
	for i, r := range s.robots {
		p := r.Pos.Add(r.Vel.Scale(t))
		out[i] = grid.Pt((p.X%w+w)%w, (p.Y%h+h)%h)
	}

	return out
}

// SafetyFactor multiplies the robot counts of the four quadrants after t
// seconds. Robots on the middle row or column belong to no quadrant.
func (s *Solver) SafetyFactor(t int) int {
	mid := grid.Pt(s.cfg.Width/2, s.cfg.Height/2)
	quadrants := make(map[grid.Point]int, 4)
	for _, p := range s.At(t) {
		q := p.Sub(mid)
		q = grid.Pt(grid.Sign(q.X), grid.Sign(q.Y))
		if q.X == 0 || q.Y == 0 {
			continue
		}
		quadrants[q]++
	}

	product := 1
	for _, q := range []grid.Point{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}} {
		product *= quadrants[q]
	}

	return product
}

// PartOne is the safety factor after 100 seconds.
func (s *Solver) PartOne() int {
	return s.SafetyFactor(100)
}

// PartTwo returns the first second at which some row holds Run robots side
// by side. Positions repeat after Width×Height seconds, so the search stops
// there with ErrNoTree.
func (s *Solver) PartTwo() (int, error) {
	for t := 0; t < s.cfg.Width*s.cfg.Height; t++ {
		if s.longestRun(s.At(t)) >= s.cfg.Run {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: no run of %d within %d seconds", ErrNoTree, s.cfg.Run, s.cfg.Width*s.cfg.Height)
}

// longestRun returns the most robots standing next to each other in one row.
func (s *Solver) longestRun(robots []grid.Point) int {
	occupied := mapset.New[grid.Point]()
	for _, p := range robots {
		occupied.Put(p)
	}

	best := 0
	occupied.Each(func(p grid.Point) {
		// count only from the left end of each run
		if occupied.Has(p.Move(grid.Left)) {
			return
		}
		n := 1
		for q := p.Move(grid.Right); occupied.Has(q); q = q.Move(grid.Right) {
			n++
		}
		best = max(best, n)
	})

	return best
}

// Picture draws the room at the second PartTwo finds, with every robot
// highlighted.
func (s *Solver) Picture() (*grid.Grid[rune], []grid.Point, error) {
	t, err := s.PartTwo()
	if err != nil {
		return nil, nil, err
	}
	g, err := grid.New(s.cfg.Width, s.cfg.Height, rune(empty))
	if err != nil {
		return nil, nil, err
	}
	robots := s.At(t)
	for _, p := range robots {
		if err = g.Set(p, robot); err != nil {
			return nil, nil, err
		}
	}

	return g, robots, nil
}
