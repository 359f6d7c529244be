// Package day10 solves "Hoof It": scoring and rating hiking trails that
// climb one height unit per step from 0 to 9.
package day10

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

const (
	trailhead  = 0
	summit     = 9
	impassable = -1
)

// Solver holds the topographic map.
type Solver struct {
	heights *grid.Grid[int]
}

// NewSolver parses a digit map. Non-digit cells are impassable.
func NewSolver(lines []string) (*Solver, error) {
	g, err := grid.Parse(lines, grid.Digits(impassable))
	if err != nil {
		return nil, err
	}

	return &Solver{heights: g}, nil
}

// uphill returns the cardinal neighbours of p exactly one unit higher.
func (s *Solver) uphill(p grid.Point) []grid.Point {
	h := s.heights.GetOrDefault(p, impassable)
	var out []grid.Point
	for _, n := range s.heights.Neighbors(p, false) {
		if v, ok := s.heights.Lookup(n.Point); ok && h != impassable && v == h+1 {
			out = append(out, n.Point)
		}
	}

	return out
}

// score counts the distinct summits reachable from head.
func (s *Solver) score(head grid.Point) int {
	seen := mapset.New[grid.Point]()
	work := stack.New[grid.Point]()
	work.Push(head)
	seen.Put(head)

	summits := 0
	for work.Size() > 0 {
		p := work.Pop()
		if s.heights.GetOrDefault(p, impassable) == summit {
			summits++
			continue
		}
		for _, q := range s.uphill(p) {
			if !seen.Has(q) {
				seen.Put(q)
				work.Push(q)
			}
		}
	}

	return summits
}

// rating counts distinct trails from p to any summit, memoised per cell.
func (s *Solver) rating(p grid.Point, memo map[grid.Point]int) int {
	if n, ok := memo[p]; ok {
		return n
	}
	n := 0
	if s.heights.GetOrDefault(p, impassable) == summit {
		n = 1
	} else {
		for _, q := range s.uphill(p) {
			n += s.rating(q, memo)
		}
	}
	memo[p] = n

	return n
}

// PartOne sums the scores of all trailheads.
func (s *Solver) PartOne() int {
	total := 0
	for _, head := range grid.FindAll(s.heights, trailhead) {
		total += s.score(head)
	}

	return total
}

// PartTwo sums the ratings of all trailheads.
func (s *Solver) PartTwo() int {
	memo := make(map[grid.Point]int)
	total := 0
	for _, head := range grid.FindAll(s.heights, trailhead) {
		total += s.rating(head, memo)
	}

	return total
}
