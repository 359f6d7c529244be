// Package days maps puzzle days to their solvers so that a single command can
// run any of them.
package days

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/jfkriz/AdventOfCode-2024/days/day04"
	"github.com/jfkriz/AdventOfCode-2024/days/day05"
	"github.com/jfkriz/AdventOfCode-2024/days/day06"
	"github.com/jfkriz/AdventOfCode-2024/days/day08"
	"github.com/jfkriz/AdventOfCode-2024/days/day10"
	"github.com/jfkriz/AdventOfCode-2024/days/day11"
	"github.com/jfkriz/AdventOfCode-2024/days/day12"
	"github.com/jfkriz/AdventOfCode-2024/days/day13"
	"github.com/jfkriz/AdventOfCode-2024/days/day14"
	"github.com/jfkriz/AdventOfCode-2024/days/day15"
	"github.com/jfkriz/AdventOfCode-2024/days/day16"
	"github.com/jfkriz/AdventOfCode-2024/days/day17"
	"github.com/jfkriz/AdventOfCode-2024/days/day18"
	"github.com/jfkriz/AdventOfCode-2024/days/day19"
	"github.com/jfkriz/AdventOfCode-2024/days/day20"
	"github.com/jfkriz/AdventOfCode-2024/days/day21"
	"github.com/jfkriz/AdventOfCode-2024/days/day23"
	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// ErrUnknownDay is returned by Lookup for a day with no registered solver.
var ErrUnknownDay = errors.New("days: no solver for day")

// Answer holds both parts of a day's result, formatted for printing.
type Answer struct {
	PartOne string
	PartTwo string
}

// Puzzle is one registered day.
type Puzzle struct {
	Day   int
	Title string

	// Solve computes both answers from the raw input lines.
	Solve func(lines []string) (Answer, error)

	// Picture, when non-nil, returns a grid to draw and the cells to highlight.
	Picture func(lines []string) (*grid.Grid[rune], []grid.Point, error)
}

var registry = map[int]Puzzle{
	4: {Day: 4, Title: "Ceres Search", Solve: func(lines []string) (Answer, error) {
		s, err := day04.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), s.PartTwo()), nil
	}},
	5: {Day: 5, Title: "Print Queue", Solve: func(lines []string) (Answer, error) {
		s, err := day05.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		two, err := s.PartTwo()
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), two), nil
	}},
	6: {Day: 6, Title: "Guard Gallivant",
		Solve: func(lines []string) (Answer, error) {
			s, err := day06.NewSolver(lines)
			if err != nil {
				return Answer{}, err
			}
			return ints(s.PartOne(), s.PartTwo()), nil
		},
		Picture: func(lines []string) (*grid.Grid[rune], []grid.Point, error) {
			s, err := day06.NewSolver(lines)
			if err != nil {
				return nil, nil, err
			}
			g, route := s.Picture()
			return g, route, nil
		},
	},
	8: {Day: 8, Title: "Resonant Collinearity", Solve: func(lines []string) (Answer, error) {
		s, err := day08.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), s.PartTwo()), nil
	}},
	10: {Day: 10, Title: "Hoof It", Solve: func(lines []string) (Answer, error) {
		s, err := day10.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), s.PartTwo()), nil
	}},
	11: {Day: 11, Title: "Plutonian Pebbles", Solve: func(lines []string) (Answer, error) {
		s, err := day11.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), s.PartTwo()), nil
	}},
	12: {Day: 12, Title: "Garden Groups", Solve: func(lines []string) (Answer, error) {
		s, err := day12.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), s.PartTwo()), nil
	}},
	13: {Day: 13, Title: "Claw Contraption", Solve: func(lines []string) (Answer, error) {
		s, err := day13.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), s.PartTwo()), nil
	}},
	14: {Day: 14, Title: "Restroom Redoubt",
		Solve: func(lines []string) (Answer, error) {
			s, err := day14.NewSolver(lines)
			if err != nil {
				return Answer{}, err
			}
			return fallible(func() (int, error) { return s.PartOne(), nil }, s.PartTwo)
		},
		Picture: func(lines []string) (*grid.Grid[rune], []grid.Point, error) {
			s, err := day14.NewSolver(lines)
			if err != nil {
				return nil, nil, err
			}
			return s.Picture()
		},
	},
	15: {Day: 15, Title: "Warehouse Woes",
		Solve: func(lines []string) (Answer, error) {
			s, err := day15.NewSolver(lines)
			if err != nil {
				return Answer{}, err
			}
			return fallible(s.PartOne, s.PartTwo)
		},
		Picture: func(lines []string) (*grid.Grid[rune], []grid.Point, error) {
			s, err := day15.NewSolver(lines)
			if err != nil {
				return nil, nil, err
			}
			return s.Picture()
		},
	},
	16: {Day: 16, Title: "Reindeer Maze",
		Solve: func(lines []string) (Answer, error) {
			s, err := day16.NewSolver(lines)
			if err != nil {
				return Answer{}, err
			}
			return fallible(s.PartOne, s.PartTwo)
		},
		Picture: func(lines []string) (*grid.Grid[rune], []grid.Point, error) {
			s, err := day16.NewSolver(lines)
			if err != nil {
				return nil, nil, err
			}
			return s.Picture()
		},
	},
	17: {Day: 17, Title: "Chronospatial Computer", Solve: func(lines []string) (Answer, error) {
		s, err := day17.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		one, err := s.PartOne()
		if err != nil {
			return Answer{}, err
		}
		two, err := s.PartTwo()
		if err != nil {
			return Answer{}, err
		}
		return Answer{PartOne: one, PartTwo: strconv.Itoa(two)}, nil
	}},
	18: {Day: 18, Title: "RAM Run",
		Solve: func(lines []string) (Answer, error) {
			s, err := day18.NewSolver(lines)
			if err != nil {
				return Answer{}, err
			}
			one, err := s.PartOne()
			if err != nil {
				return Answer{}, err
			}
			two, err := s.PartTwo()
			if err != nil {
				return Answer{}, err
			}
			return Answer{PartOne: strconv.Itoa(one), PartTwo: two}, nil
		},
		Picture: func(lines []string) (*grid.Grid[rune], []grid.Point, error) {
			s, err := day18.NewSolver(lines)
			if err != nil {
				return nil, nil, err
			}
			return s.Picture()
		},
	},
	19: {Day: 19, Title: "Linen Layout", Solve: func(lines []string) (Answer, error) {
		s, err := day19.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), s.PartTwo()), nil
	}},
	20: {Day: 20, Title: "Race Condition",
		Solve: func(lines []string) (Answer, error) {
			s, err := day20.NewSolver(lines)
			if err != nil {
				return Answer{}, err
			}
			return ints(s.PartOne(), s.PartTwo()), nil
		},
		Picture: func(lines []string) (*grid.Grid[rune], []grid.Point, error) {
			s, err := day20.NewSolver(lines)
			if err != nil {
				return nil, nil, err
			}
			g, route := s.Picture()
			return g, route, nil
		},
	},
	21: {Day: 21, Title: "Keypad Conundrum", Solve: func(lines []string) (Answer, error) {
		s, err := day21.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		return ints(s.PartOne(), s.PartTwo()), nil
	}},
	23: {Day: 23, Title: "LAN Party", Solve: func(lines []string) (Answer, error) {
		s, err := day23.NewSolver(lines)
		if err != nil {
			return Answer{}, err
		}
		one, err := s.PartOne()
		if err != nil {
			return Answer{}, err
		}
		two, err := s.PartTwo()
		if err != nil {
			return Answer{}, err
		}
		return Answer{PartOne: strconv.Itoa(one), PartTwo: two}, nil
	}},
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (Puzzle, error) {
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}

	return p, nil
}

// All returns every registered puzzle in day order.
func All() []Puzzle {
	out := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })

	return out
}

func ints(one, two int) Answer {
	return Answer{PartOne: strconv.Itoa(one), PartTwo: strconv.Itoa(two)}
}

func fallible(one, two func() (int, error)) (Answer, error) {
	a, err := one()
	if err != nil {
		return Answer{}, err
	}
	b, err := two()
	if err != nil {
		return Answer{}, err
	}

	return ints(a, b), nil
}
