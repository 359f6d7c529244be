// Package day16 solves "Reindeer Maze": the cheapest route from S to E when
// every 90° turn costs a thousand steps, and the tiles shared by all such routes.
package day16

import (
	"errors"
	"fmt"

	"github.com/jfkriz/AdventOfCode-2024/dijkstra"
	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// Errors returned by the solver.
var (
	ErrNoStart = errors.New("day16: start tile 'S' not found")
	ErrNoEnd   = errors.New("day16: end tile 'E' not found")
	ErrNoPath  = errors.New("day16: end tile is unreachable")
)

const (
	start = 'S'
	end   = 'E'
	wall  = '#'

	stepCost = 1
	turnCost = 1000
)

// Solver holds the maze and its endpoints. The reindeer starts facing east.
type Solver struct {
	maze       *grid.Grid[rune]
	start, end grid.Point
	best       *dijkstra.Result
}

// NewSolver parses the maze.
func NewSolver(lines []string) (*Solver, error) {
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}
	s, err := grid.Find(g, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStart, err)
	}
	e, err := grid.Find(g, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEnd, err)
	}

	return &Solver{maze: g, start: s, end: e}, nil
}

// Search runs the maze search once and caches the result.
func (s *Solver) Search() (*dijkstra.Result, error) {
	if s.best != nil {
		return s.best, nil
	}
	res, err := dijkstra.Search(s.maze,
		dijkstra.Source(s.start, grid.Right),
		dijkstra.Target(s.end),
		dijkstra.WithWall(wall),
		dijkstra.WithCost(dijkstra.StepCost(stepCost, turnCost)),
	)
	if err != nil {
		return nil, err
	}
	if !res.Reached {
		return nil, ErrNoPath
	}
	s.best = res

	return res, nil
}

// PartOne returns the lowest score a reindeer could get.
func (s *Solver) PartOne() (int, error) {
	res, err := s.Search()
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// PartTwo counts the tiles lying on at least one best path.
func (s *Solver) PartTwo() (int, error) {
	res, err := s.Search()
	if err != nil {
		return 0, err
	}

	return len(res.Tiles), nil
}

// Picture returns the maze with every best-path tile highlighted.
func (s *Solver) Picture() (*grid.Grid[rune], []grid.Point, error) {
	res, err := s.Search()
	if err != nil {
		return nil, nil, err
	}

	return s.maze.Clone(), res.Tiles, nil
}
