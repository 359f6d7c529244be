// Package day12 solves "Garden Groups": pricing fences around each
// contiguous plot of identical plants.
package day12

import (
	"github.com/jfkriz/AdventOfCode-2024/grid"
	"github.com/jfkriz/AdventOfCode-2024/region"
)

// Solver holds the garden's regions.
type Solver struct {
	garden  *grid.Grid[rune]
	regions []*region.Region[rune]
}

// NewSolver parses the garden map and partitions it into regions.
func NewSolver(lines []string) (*Solver, error) {
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}

	return &Solver{garden: g, regions: region.Find(g)}, nil
}

// Regions returns the regions in discovery order.
func (s *Solver) Regions() []*region.Region[rune] {
	return s.regions
}

// PartOne prices each region at area × perimeter.
func (s *Solver) PartOne() int {
	return s.price(func(r *region.Region[rune]) int { return r.Perimeter() })
}

// PartTwo prices each region at area × number of straight sides.
func (s *Solver) PartTwo() int {
	return s.price(func(r *region.Region[rune]) int { return r.Sides() })
}

func (s *Solver) price(fence func(*region.Region[rune]) int) int {
	total := 0
	for _, r := range s.regions {
		total += r.Area() * fence(r)
	}

	return total
}
