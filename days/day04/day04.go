// Package day04 solves "Ceres Search": counting XMAS in a letter grid.
package day04

import (
	"github.com/jfkriz/AdventOfCode-2024/grid"
)

const word = "XMAS"

// Solver holds the parsed letter grid.
type Solver struct {
	letters *grid.Grid[rune]
}

// NewSolver parses the word search.
func NewSolver(lines []string) (*Solver, error) {
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}

	return &Solver{letters: g}, nil
}

// PartOne counts every occurrence of XMAS in any of the 8 directions,
// overlaps included.
func (s *Solver) PartOne() int {
	count := 0
	for _, start := range grid.FindAll(s.letters, rune(word[0])) {
		for _, d := range grid.All {
			if s.spells(start, d) {
				count++
			}
		}
	}

	return count
}

func (s *Solver) spells(start grid.Point, d grid.Direction) bool {
	for i, r := range word {
		if s.letters.GetOrDefault(start.MoveN(d, i), 0) != r {
			return false
		}
	}

	return true
}

// PartTwo counts every A at the centre of two diagonal MAS words (an X-MAS).
func (s *Solver) PartTwo() int {
	count := 0
	for _, a := range grid.FindAll(s.letters, 'A') {
		if s.mas(a, grid.UpLeft) && s.mas(a, grid.UpRight) {
			count++
		}
	}

	return count
}

// mas reports whether the diagonal through centre along d reads MAS either way.
func (s *Solver) mas(centre grid.Point, d grid.Direction) bool {
	a := s.letters.GetOrDefault(centre.Move(d), 0)
	b := s.letters.GetOrDefault(centre.Move(d.Opposite()), 0)

	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}
