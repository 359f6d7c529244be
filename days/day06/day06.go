// Package day06 solves "Guard Gallivant": following a guard who turns right
// at every obstacle, then finding where one extra obstacle traps her in a loop.
package day06

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// ErrNoStart indicates the map has no guard ('^').
var ErrNoStart = errors.New("day06: guard not found")

const (
	guard    = '^'
	obstacle = '#'
)

// Solver holds the lab map and the guard's starting cell.
type Solver struct {
	lab   *grid.Grid[rune]
	start grid.Point
}

// NewSolver parses the lab map.
func NewSolver(lines []string) (*Solver, error) {
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}
	start, err := grid.Find(g, guard)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStart, err)
	}

	return &Solver{lab: g, start: start}, nil
}

// patrol walks the guard from the start facing up until she leaves the map
// (false) or repeats a (cell, facing) state (true). extra, if non-nil, is an
// additional obstacle that exists only for this walk. visit sees every cell
// the guard stands on.
func (s *Solver) patrol(extra *grid.Point, visit func(grid.Point)) bool {
	// one bit per cardinal facing
	states := make([]uint8, s.lab.Width()*s.lab.Height())
	pos, facing := s.start, grid.Up
	for {
		i, bit := s.lab.Index(pos), uint8(1)<<(facing/2)
		if states[i]&bit != 0 {
			return true
		}
		states[i] |= bit
		if visit != nil {
			visit(pos)
		}

		next := pos.Move(facing)
		v, ok := s.lab.Lookup(next)
		if !ok {
			return false
		}
		if v == obstacle || (extra != nil && next == *extra) {
			facing = facing.RotateCW(false)
			continue
		}
		pos = next
	}
}

// Route returns every distinct cell on the guard's patrol.
func (s *Solver) Route() mapset.Set[grid.Point] {
	seen := mapset.New[grid.Point]()
	s.patrol(nil, seen.Put)

	return seen
}

// PartOne counts the distinct cells the guard visits before leaving.
func (s *Solver) PartOne() int {
	return s.Route().Size()
}

// PartTwo counts the cells where a single new obstacle makes the guard loop.
// Only cells on the original route can change her path; the start is excluded.
func (s *Solver) PartTwo() int {
	count := 0
	s.Route().Each(func(p grid.Point) {
		if p == s.start {
			return
		}
		if s.patrol(&p, nil) {
			count++
		}
	})

	return count
}

// Picture returns the lab with the guard's route highlighted.
func (s *Solver) Picture() (*grid.Grid[rune], []grid.Point) {
	var route []grid.Point
	s.Route().Each(func(p grid.Point) { route = append(route, p) })

	return s.lab.Clone(), route
}
