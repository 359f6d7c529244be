// Package day20 solves "Race Condition": counting the shortcuts available to
// a program that may pass through walls for a bounded number of picoseconds.
package day20

import (
	"errors"
	"fmt"

	"github.com/jfkriz/AdventOfCode-2024/bfs"
	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// Errors returned by the solver.
var (
	ErrNoStart         = errors.New("day20: start 'S' not found")
	ErrNoEnd           = errors.New("day20: end 'E' not found")
	ErrNoTrack         = errors.New("day20: no track from start to end")
	ErrOptionViolation = errors.New("day20: invalid option supplied")
)

const (
	start = 'S'
	end   = 'E'
	wall  = '#'

	shortCheat = 2
	longCheat  = 20
)

// Options configures the solver.
type Options struct {
	// MinSavings is the smallest saving, in picoseconds, a cheat must give to count.
	MinSavings int

	err error
}

// Option is a functional option for NewSolver.
type Option func(*Options)

// DefaultOptions counts cheats saving at least 100 picoseconds.
func DefaultOptions() Options {
	return Options{MinSavings: 100}
}

// WithMinSavings sets the counting threshold. Must be ≥ 1.
func WithMinSavings(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: min savings %d", ErrOptionViolation, n)
			return
		}
		o.MinSavings = n
	}
}

// Solver holds the race track as the ordered list of cells from S to E.
type Solver struct {
	track     *grid.Grid[rune]
	path      []grid.Point
	minSaving int
}

// NewSolver parses the track and walks it once from start to end.
func NewSolver(lines []string, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}
	s, err := grid.Find(g, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStart, err)
	}
	e, err := grid.Find(g, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEnd, err)
	}

	res, err := bfs.Distances(g, s, bfs.WithWall(wall))
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(e)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTrack, err)
	}

	return &Solver{track: g, path: path, minSaving: cfg.MinSavings}, nil
}

// Length returns the number of picoseconds the race takes without cheating.
func (s *Solver) Length() int {
	return len(s.path) - 1
}

// Cheats counts the distinct (start, end) cheats of at most radius
// picoseconds that save at least minSave picoseconds.
//
// A cheat jumps from the cell at track position i to the cell at position
// j > i, costing their Manhattan distance d instead of j-i steps.
func (s *Solver) Cheats(radius, minSave int) int {
	count := 0
	for i, from := range s.path {
		// a saving of minSave needs j-i ≥ minSave + d ≥ minSave + 1
		for j := i + minSave + 1; j < len(s.path); j++ {
			d := from.Manhattan(s.path[j])
			if d <= radius && j-i-d >= minSave {
				count++
			}
		}
	}

	return count
}

// PartOne counts two-picosecond cheats meeting the savings threshold.
func (s *Solver) PartOne() int {
	return s.Cheats(shortCheat, s.minSaving)
}

// PartTwo counts twenty-picosecond cheats meeting the savings threshold.
func (s *Solver) PartTwo() int {
	return s.Cheats(longCheat, s.minSaving)
}

// Picture returns the track with the honest route highlighted.
func (s *Solver) Picture() (*grid.Grid[rune], []grid.Point) {
	route := make([]grid.Point, len(s.path))
	copy(route, s.path)

	return s.track.Clone(), route
}
