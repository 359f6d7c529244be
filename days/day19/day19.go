// Package day19 solves "Linen Layout": building striped designs out of an
// unlimited supply of towel patterns.
package day19

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/jfkriz/AdventOfCode-2024/input"
)

// ErrMalformed indicates input without a towel line and a list of designs.
var ErrMalformed = errors.New("day19: expected towels and designs separated by a blank line")

// Solver holds the available towel patterns and the wanted designs.
type Solver struct {
	towels  mapset.Set[string]
	longest int
	designs []string
}

// NewSolver parses the comma-separated towels and the designs below them.
func NewSolver(lines []string) (*Solver, error) {
	chunks := input.Chunked(lines)
	if len(chunks) != 2 || len(chunks[0]) != 1 {
		return nil, fmt.Errorf("%w: got %d sections", ErrMalformed, len(chunks))
	}

	s := &Solver{towels: mapset.New[string]()}
	for _, t := range strings.Split(chunks[0][0], ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, fmt.Errorf("%w: empty towel in %q", ErrMalformed, chunks[0][0])
		}
		s.towels.Put(t)
		s.longest = max(s.longest, len(t))
	}
	for _, d := range chunks[1] {
		s.designs = append(s.designs, strings.TrimSpace(d))
	}

	return s, nil
}

// Arrangements returns the number of distinct towel sequences that spell design.
func (s *Solver) Arrangements(design string) int {
	return s.arrangements(design, make(map[string]int))
}

// arrangements counts the ways to finish the remaining suffix rest. Suffixes
// are shared between designs, so memo may be reused across one batch.
func (s *Solver) arrangements(rest string, memo map[string]int) int {
	if rest == "" {
		return 1
	}
	if n, ok := memo[rest]; ok {
		return n
	}

	n := 0
	for l := 1; l <= min(s.longest, len(rest)); l++ {
		if s.towels.Has(rest[:l]) {
			n += s.arrangements(rest[l:], memo)
		}
	}
	memo[rest] = n

	return n
}

// PartOne counts the designs that can be made at all.
func (s *Solver) PartOne() int {
	memo := make(map[string]int)
	possible := 0
	for _, d := range s.designs {
		if s.arrangements(d, memo) > 0 {
			possible++
		}
	}

	return possible
}

// PartTwo sums the arrangement counts over every design.
func (s *Solver) PartTwo() int {
	memo := make(map[string]int)
	total := 0
	for _, d := range s.designs {
		total += s.arrangements(d, memo)
	}

	return total
}
