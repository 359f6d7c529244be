// Package day18 solves "RAM Run": escaping a memory space while falling
// bytes corrupt it one cell at a time.
package day18

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jfkriz/AdventOfCode-2024/bfs"
	"github.com/jfkriz/AdventOfCode-2024/grid"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

// Errors returned by the solver.
var (
	ErrMalformed       = errors.New("day18: malformed byte position")
	ErrOptionViolation = errors.New("day18: invalid option supplied")
	ErrNoPath          = errors.New("day18: exit is unreachable")
)

const (
	safe    = '.'
	corrupt = '#'
)

// Options configures the memory space.
type Options struct {
	Width, Height int
	// Bytes is how many falling bytes PartOne lets land.
	Bytes int

	err error
}

// Option is a functional option for NewSolver.
type Option func(*Options)

// DefaultOptions returns the full-size 71×71 space with 1024 fallen bytes.
func DefaultOptions() Options {
	return Options{Width: 71, Height: 71, Bytes: 1024}
}

// WithSize sets the memory space dimensions. Both must be positive.
func WithSize(w, h int) Option {
	return func(o *Options) {
		if w <= 0 || h <= 0 {
			o.err = fmt.Errorf("%w: size %dx%d", ErrOptionViolation, w, h)
			return
		}
		o.Width, o.Height = w, h
	}
}

// WithBytes sets how many bytes have fallen for PartOne. Must be ≥ 0.
func WithBytes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: bytes %d", ErrOptionViolation, n)
			return
		}
		o.Bytes = n
	}
}

// Solver holds the empty memory space and the bytes in falling order.
type Solver struct {
	space      *grid.Grid[rune]
	bytes      []grid.Point
	start, end grid.Point
	fallen     int
}

// NewSolver parses one "x,y" position per line. Positions outside the
// configured space are rejected.
func NewSolver(lines []string, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	space, err := grid.New(cfg.Width, cfg.Height, safe)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		space:  space,
		start:  grid.Pt(0, 0),
		end:    grid.Pt(cfg.Width-1, cfg.Height-1),
		fallen: min(cfg.Bytes, len(lines)),
	}
	for i, l := range lines {
		xy, err := input.Ints(strings.TrimSpace(l), ",")
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+1, err)
		}
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, i+1, l)
		}
		p := grid.Pt(xy[0], xy[1])
		if !space.Contains(p) {
			return nil, fmt.Errorf("%w: line %d: %v outside %dx%d", ErrMalformed, i+1, p, cfg.Width, cfg.Height)
		}
		s.bytes = append(s.bytes, p)
	}

	return s, nil
}

// steps returns the shortest escape with the first n bytes fallen.
func (s *Solver) steps(n int) (int, error) {
	return bfs.ShortestPath(s.space, s.start, s.end, bfs.WithBlocked(s.bytes[:n]...))
}

// PartOne returns the minimum number of steps to the exit once the
// configured number of bytes has fallen.
func (s *Solver) PartOne() (int, error) {
	d, err := s.steps(s.fallen)
	if err != nil {
		return 0, err
	}
	if d == bfs.Unreachable {
		return 0, ErrNoPath
	}

	return d, nil
}

// PartTwo returns the first byte, as "x,y", that cuts the exit off from the
// start. It returns "" when the exit stays reachable after every byte.
//
// Reachability only ever shrinks as bytes fall, so the answer is found by
// binary search over the number of fallen bytes.
func (s *Solver) PartTwo() (string, error) {
	var searchErr error
	k := sort.Search(len(s.bytes)+1, func(n int) bool {
		if searchErr != nil {
			return true
		}
		d, err := s.steps(n)
		if err != nil {
			searchErr = err
			return true
		}

		return d == bfs.Unreachable
	})
	if searchErr != nil {
		return "", searchErr
	}
	if k == 0 || k > len(s.bytes) {
		return "", nil
	}

	return s.bytes[k-1].String(), nil
}

// Picture returns the space after the configured bytes have fallen, with one
// shortest escape route highlighted.
func (s *Solver) Picture() (*grid.Grid[rune], []grid.Point, error) {
	g := s.space.Clone()
	for _, p := range s.bytes[:s.fallen] {
		if err := g.Set(p, corrupt); err != nil {
			return nil, nil, err
		}
	}
	res, err := bfs.Distances(g, s.start, bfs.WithWall(corrupt))
	if err != nil {
		return nil, nil, err
	}
	route, err := res.PathTo(s.end)
	if err != nil {
		return g, nil, nil
	}

	return g, route, nil
}
