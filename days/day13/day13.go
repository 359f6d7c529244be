// Package day13 solves "Claw Contraption": finding the cheapest button
// presses that land each claw exactly on its prize.
package day13

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jfkriz/AdventOfCode-2024/grid"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

// ErrMalformed indicates a machine block that is not three well-formed lines.
var ErrMalformed = errors.New("day13: malformed claw machine")

const (
	costA = 3
	costB = 1

	// pressLimit bounds each button in PartOne.
	pressLimit = 100
	// farOffset is added to both prize coordinates in PartTwo.
	farOffset = 10_000_000_000_000
)

// Machine is one claw: the offsets of buttons A and B and the prize location.
type Machine struct {
	A, B, Prize grid.Point
}

// Presses solves a·A + b·B = Prize. Both buttons move independently only
// when their offsets are not parallel; otherwise, or when the solution is
// not a pair of non-negative integers, ok is false.
func (m Machine) Presses() (a, b int, ok bool) {
	det := m.A.X*m.B.Y - m.A.Y*m.B.X
	if det == 0 {
		return 0, 0, false
	}
	an := m.Prize.X*m.B.Y - m.Prize.Y*m.B.X
	bn := m.A.X*m.Prize.Y - m.A.Y*m.Prize.X
	if an%det != 0 || bn%det != 0 {
		return 0, 0, false
	}
	a, b = an/det, bn/det
	if a < 0 || b < 0 {
		return 0, 0, false
	}

	return a, b, true
}

// Solver holds the parsed machines.
type Solver struct {
	machines []Machine
}

// NewSolver parses blank-line separated machine blocks.
func NewSolver(lines []string) (*Solver, error) {
	s := &Solver{}
	for _, block := range input.Chunked(lines) {
		if len(block) != 3 {
			return nil, fmt.Errorf("%w: %d lines", ErrMalformed, len(block))
		}
		var m Machine
		formats := []struct {
			format string
			p      *grid.Point
		}{
			{"Button A: X+%d, Y+%d", &m.A},
			{"Button B: X+%d, Y+%d", &m.B},
			{"Prize: X=%d, Y=%d", &m.Prize},
		}
		for i, f := range formats {
			if _, err := fmt.Sscanf(strings.TrimSpace(block[i]), f.format, &f.p.X, &f.p.Y); err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, block[i], err)
			}
		}
		s.machines = append(s.machines, m)
	}

	return s, nil
}

// Tokens sums the cost of winning every prize that can be won, moving each
// prize by offset first. A positive limit caps presses per button.
func (s *Solver) Tokens(offset, limit int) int {
	total := 0
	for _, m := range s.machines {
		m.Prize = m.Prize.Add(grid.Pt(offset, offset))
		a, b, ok := m.Presses()
		if !ok || (limit > 0 && (a > limit || b > limit)) {
			continue
		}
		total += costA*a + costB*b
	}

	return total
}

// PartOne spends tokens on the prizes reachable within 100 presses per button.
func (s *Solver) PartOne() int {
	return s.Tokens(0, pressLimit)
}

// PartTwo spends tokens after the prizes move 10 trillion units out.
func (s *Solver) PartTwo() int {
	return s.Tokens(farOffset, 0)
}
