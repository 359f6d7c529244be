// Package day21 solves "Keypad Conundrum": typing door codes through a chain
// of robots, each steering the next one's arm over a keypad.
package day21

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// ErrMalformed indicates a code that is not digits followed by 'A'.
var ErrMalformed = errors.New("day21: malformed door code")

const (
	gap      = ' '
	activate = 'A'
)

var (
	numericLayout     = []string{"789", "456", "123", " 0A"}
	directionalLayout = []string{" ^A", "<v>"}
)

// keypad locates every key of one layout. The gap is not a key.
type keypad struct {
	g   *grid.Grid[rune]
	key map[rune]grid.Point
}

func newKeypad(layout []string) (*keypad, error) {
	g, err := grid.FromLines(layout)
	if err != nil {
		return nil, err
	}
	k := &keypad{g: g, key: make(map[rune]grid.Point)}
	g.Each(func(p grid.Point, r rune) {
		if r != gap {
			k.key[r] = p
		}
	})

	return k, nil
}

// routes returns the button sequences, each ending in 'A', that move an arm
// from one key to another in at most one turn without crossing the gap.
func (k *keypad) routes(from, to rune) []string {
	a, b := k.key[from], k.key[to]
	d := b.Sub(a)

	horizontal := strings.Repeat(string(arrow(grid.Pt(grid.Sign(d.X), 0))), grid.Abs(d.X))
	vertical := strings.Repeat(string(arrow(grid.Pt(0, grid.Sign(d.Y)))), grid.Abs(d.Y))

	var out []string
	if k.g.GetOrDefault(grid.Pt(b.X, a.Y), gap) != gap {
		out = append(out, horizontal+vertical+string(activate))
	}
	if d.X != 0 && d.Y != 0 && k.g.GetOrDefault(grid.Pt(a.X, b.Y), gap) != gap {
		out = append(out, vertical+horizontal+string(activate))
	}

	return out
}

// arrow names the directional key for a unit step. The zero step has none
// and is only ever repeated zero times.
func arrow(step grid.Point) rune {
	switch step {
	case grid.Up.Offset():
		return '^'
	case grid.Down.Offset():
		return 'v'
	case grid.Left.Offset():
		return '<'
	case grid.Right.Offset():
		return '>'
	}

	return activate
}

// chainKey is one memoised sub-problem: a sequence typed on a directional
// keypad with some robots still between it and the human.
type chainKey struct {
	seq    string
	robots int
}

// chain computes the human presses needed per typed sequence for one robot
// depth. It lives for a single Complexity call.
type chain struct {
	dir  *keypad
	memo map[chainKey]int
}

// presses returns how many human presses make seq appear on a directional
// keypad with the given number of robots still above it.
func (c *chain) presses(seq string, robots int) int {
	if robots == 0 {
		return len(seq)
	}
	key := chainKey{seq, robots}
	if n, ok := c.memo[key]; ok {
		return n
	}

	n := 0
	at := rune(activate)
	for _, r := range seq {
		n += c.cheapest(c.dir, at, r, robots-1)
		at = r
	}
	c.memo[key] = n

	return n
}

// cheapest returns the fewest human presses that move pad's arm from one key
// to another and press it.
func (c *chain) cheapest(pad *keypad, from, to rune, robots int) int {
	best := -1
	for _, route := range pad.routes(from, to) {
		if n := c.presses(route, robots); best < 0 || n < best {
			best = n
		}
	}

	return best
}

// code is one door code with its numeric part.
type code struct {
	keys  string
	value int
}

// Solver holds the door codes and both keypad layouts.
type Solver struct {
	codes        []code
	numeric, dir *keypad
}

// NewSolver parses one door code per line.
func NewSolver(lines []string) (*Solver, error) {
	numeric, err := newKeypad(numericLayout)
	if err != nil {
		return nil, err
	}
	dir, err := newKeypad(directionalLayout)
	if err != nil {
		return nil, err
	}

	s := &Solver{numeric: numeric, dir: dir}
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		digits, ok := strings.CutSuffix(l, string(activate))
		if !ok || digits == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, l)
		}
		value, err := strconv.Atoi(digits)
		if err != nil || strings.ContainsAny(digits, "+-") {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, l)
		}
		s.codes = append(s.codes, code{keys: l, value: value})
	}

	return s, nil
}

// Presses returns the length of the shortest human sequence that types keys
// on the numeric keypad when the given number of robots with directional
// keypads stand in between. Keys must be digits or 'A'.
func (s *Solver) Presses(keys string, robots int) int {
	c := &chain{dir: s.dir, memo: make(map[chainKey]int)}

	return s.presses(c, keys, robots)
}

func (s *Solver) presses(c *chain, keys string, robots int) int {
	n := 0
	at := rune(activate)
	for _, r := range keys {
		n += c.cheapest(s.numeric, at, r, robots)
		at = r
	}

	return n
}

// Complexity sums press count times numeric value over every code.
func (s *Solver) Complexity(robots int) int {
	c := &chain{dir: s.dir, memo: make(map[chainKey]int)}
	total := 0
	for _, cd := range s.codes {
		total += s.presses(c, cd.keys, robots) * cd.value
	}

	return total
}

// PartOne types the codes through two robots.
func (s *Solver) PartOne() int {
	return s.Complexity(2)
}

// PartTwo types the codes through twenty-five robots.
func (s *Solver) PartTwo() int {
	return s.Complexity(25)
}
