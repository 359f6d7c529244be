// Package day11 solves "Plutonian Pebbles": counting stones that split or
// change every time you blink.
package day11

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jfkriz/AdventOfCode-2024/input"
)

// ErrMalformed indicates input that is not a line of non-negative integers.
var ErrMalformed = errors.New("day11: malformed stones")

// stone is the canonical sub-problem: one engraving with some blinks left.
type stone struct {
	number, blinks int
}

// Solver holds the initial row of stones.
type Solver struct {
	stones []int
}

// NewSolver parses the whitespace-separated stone numbers.
func NewSolver(lines []string) (*Solver, error) {
	nums, err := input.Ints(strings.Join(lines, " "), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for _, n := range nums {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative stone %d", ErrMalformed, n)
		}
	}

	return &Solver{stones: nums}, nil
}

// Blink returns the number of stones after blinking times times.
// The memo lives for this call only.
func (s *Solver) Blink(times int) int {
	memo := make(map[stone]int)
	total := 0
	for _, n := range s.stones {
		total += count(stone{n, times}, memo)
	}

	return total
}

// count returns how many stones st.number becomes after st.blinks blinks.
func count(st stone, memo map[stone]int) int {
	if st.blinks == 0 {
		return 1
	}
	if n, ok := memo[st]; ok {
		return n
	}

	var n int
	left, right, split := Split(st.number)
	switch {
	case split:
		n = count(stone{left, st.blinks - 1}, memo) + count(stone{right, st.blinks - 1}, memo)
	default:
		n = count(stone{left, st.blinks - 1}, memo)
	}
	memo[st] = n

	return n
}

// Split applies one blink to a stone. A 0 becomes 1; a number with an even
// count of digits splits into its two halves (split is true); anything else
// is multiplied by 2024.
func Split(n int) (left, right int, split bool) {
	if n == 0 {
		return 1, 0, false
	}
	digits := strconv.Itoa(n)
	if len(digits)%2 == 1 {
		return n * 2024, 0, false
	}
	div := 1
	for range len(digits) / 2 {
		div *= 10
	}

	return n / div, n % div, true
}

// PartOne counts the stones after 25 blinks.
func (s *Solver) PartOne() int {
	return s.Blink(25)
}

// PartTwo counts the stones after 75 blinks.
func (s *Solver) PartTwo() int {
	return s.Blink(75)
}
