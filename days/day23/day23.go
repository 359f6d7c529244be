// Package day23 solves "LAN Party": finding triangles and the largest fully
// connected group in a network of computers.
package day23

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jfkriz/AdventOfCode-2024/clique"
	"github.com/jfkriz/AdventOfCode-2024/graph"
)

// ErrMalformed indicates a line that is not of the form "a-b".
var ErrMalformed = errors.New("day23: malformed connection")

// chief marks computers that might belong to the Chief Historian.
const chief = "t"

// Solver holds the undirected network.
type Solver struct {
	network *graph.Graph
}

// NewSolver parses one "a-b" connection per line.
func NewSolver(lines []string) (*Solver, error) {
	g := graph.NewGraph()
	for i, l := range lines {
		a, b, ok := strings.Cut(strings.TrimSpace(l), "-")
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, i+1, l)
		}
		if err := g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+1, err)
		}
	}

	return &Solver{network: g}, nil
}

// PartOne counts the triangles holding at least one computer whose name
// starts with "t".
func (s *Solver) PartOne() (int, error) {
	tris, err := clique.Triangles(s.network)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, tri := range tris {
		for _, v := range tri {
			if strings.HasPrefix(v, chief) {
				count++
				break
			}
		}
	}

	return count, nil
}

// PartTwo returns the LAN party password: the members of the largest clique,
// sorted and joined with commas.
func (s *Solver) PartTwo() (string, error) {
	best, err := clique.Maximum(s.network)
	if err != nil {
		return "", err
	}

	return strings.Join(best, ","), nil
}
