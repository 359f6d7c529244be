// Package day08 solves "Resonant Collinearity": antinodes of same-frequency
// antenna pairs.
package day08

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

const empty = '.'

// Solver holds the map bounds and antennas grouped by frequency.
type Solver struct {
	area     *grid.Grid[rune]
	antennas map[rune][]grid.Point
}

// NewSolver parses the antenna map. Every non-'.' cell is an antenna whose
// frequency is its character.
func NewSolver(lines []string) (*Solver, error) {
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}
	s := &Solver{area: g, antennas: make(map[rune][]grid.Point)}
	g.Each(func(p grid.Point, r rune) {
		if r != empty {
			s.antennas[r] = append(s.antennas[r], p)
		}
	})

	return s, nil
}

// antinodes collects, for every ordered pair (a, b) of same-frequency
// antennas, the in-bounds points a + k·(a-b) for k in [from, to].
// to < 0 means "until leaving the map".
func (s *Solver) antinodes(from, to int) mapset.Set[grid.Point] {
	out := mapset.New[grid.Point]()
	for _, group := range s.antennas {
		for _, a := range group {
			for _, b := range group {
				if a == b {
					continue
				}
				step := a.Sub(b)
				for k := from; to < 0 || k <= to; k++ {
					p := a.Add(step.Scale(k))
					if !s.area.Contains(p) {
						break
					}
					out.Put(p)
				}
			}
		}
	}

	return out
}

// PartOne counts points twice as far from one antenna as from the other.
func (s *Solver) PartOne() int {
	return s.antinodes(1, 1).Size()
}

// PartTwo counts every grid point in line with at least two same-frequency
// antennas, antennas themselves included.
func (s *Solver) PartTwo() int {
	return s.antinodes(0, -1).Size()
}
