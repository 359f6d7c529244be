// Package day15 solves "Warehouse Woes": a robot shoving boxes around a
// warehouse, first with single-cell boxes and then with double-width ones.
package day15

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jfkriz/AdventOfCode-2024/grid"
	"github.com/jfkriz/AdventOfCode-2024/input"
	"github.com/jfkriz/AdventOfCode-2024/simulate"
)

// Errors returned by NewSolver.
var (
	ErrMalformed = errors.New("day15: expected a map and a move list separated by a blank line")
	ErrNoStart   = errors.New("day15: robot not found")
)

const (
	robot    = '@'
	wall     = '#'
	floor    = '.'
	box      = 'O'
	boxLeft  = '['
	boxRight = ']'
)

var (
	single = simulate.Stepper[rune]{
		Open: floor, Wall: wall, Box: box,
		Mover: robot, DrawMover: true, Policy: simulate.Push,
	}
	double = simulate.Stepper[rune]{
		Open: floor, Wall: wall, Left: boxLeft, Right: boxRight,
		Mover: robot, DrawMover: true, Policy: simulate.PushWide,
	}
)

// Solver holds the initial warehouse and the robot's move list.
type Solver struct {
	warehouse *grid.Grid[rune]
	moves     []grid.Direction
}

// NewSolver parses the warehouse map and the moves below it. The move list
// may be wrapped over any number of lines.
func NewSolver(lines []string) (*Solver, error) {
	chunks := input.Chunked(lines)
	if len(chunks) != 2 {
		return nil, fmt.Errorf("%w: got %d sections", ErrMalformed, len(chunks))
	}

	g, err := grid.FromLines(chunks[0])
	if err != nil {
		return nil, err
	}
	if _, err = grid.Find(g, robot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStart, err)
	}
	moves, err := grid.ParseDirections(strings.Join(chunks[1], ""))
	if err != nil {
		return nil, fmt.Errorf("day15: moves: %w", err)
	}

	return &Solver{warehouse: g, moves: moves}, nil
}

// Simulate runs every move on a copy of the warehouse, widened first when
// wide is set, and returns the final state.
func (s *Solver) Simulate(wide bool) (*grid.Grid[rune], error) {
	g, stepper := s.warehouse.Clone(), single
	if wide {
		g, stepper = Widen(s.warehouse), double
	}
	start, err := grid.Find(g, robot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStart, err)
	}
	if _, err = stepper.Run(g, start, s.moves); err != nil {
		return nil, err
	}

	return g, nil
}

// PartOne returns the GPS sum after running the moves in the original warehouse.
func (s *Solver) PartOne() (int, error) {
	g, err := s.Simulate(false)
	if err != nil {
		return 0, err
	}

	return GPS(g, box), nil
}

// PartTwo returns the GPS sum after running the moves in the widened warehouse.
func (s *Solver) PartTwo() (int, error) {
	g, err := s.Simulate(true)
	if err != nil {
		return 0, err
	}

	return GPS(g, boxLeft), nil
}

// Picture returns the widened warehouse after every move, with the robot
// highlighted.
func (s *Solver) Picture() (*grid.Grid[rune], []grid.Point, error) {
	g, err := s.Simulate(true)
	if err != nil {
		return nil, nil, err
	}

	return g, grid.FindAll(g, robot), nil
}

// GPS sums 100·y + x over every cell holding marker.
func GPS(g *grid.Grid[rune], marker rune) int {
	total := 0
	for _, p := range grid.FindAll(g, marker) {
		total += 100*p.Y + p.X
	}

	return total
}

// Widen doubles every cell horizontally: walls and floor are repeated, a box
// becomes "[]" and the robot becomes "@.".
func Widen(g *grid.Grid[rune]) *grid.Grid[rune] {
	rows := g.Rows()
	out := make([][]rune, len(rows))
	for y, row := range rows {
		out[y] = make([]rune, 0, 2*len(row))
		for _, c := range row {
			switch c {
			case box:
				out[y] = append(out[y], boxLeft, boxRight)
			case robot:
				out[y] = append(out[y], robot, floor)
			default:
				out[y] = append(out[y], c, c)
			}
		}
	}
	w, _ := grid.From2D(out)

	return w
}
