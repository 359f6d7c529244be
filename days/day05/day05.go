// Package day05 solves "Print Queue": checking page updates against
// pairwise ordering rules and repairing the ones that break them.
package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/jfkriz/AdventOfCode-2024/dfs"
	"github.com/jfkriz/AdventOfCode-2024/graph"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

// ErrMalformed indicates input that is not a rule block followed by an update block.
var ErrMalformed = errors.New("day05: malformed input")

// rule says page before must be printed ahead of page after.
type rule struct{ before, after int }

// Solver holds the ordering rules and the updates to check.
type Solver struct {
	rules   mapset.Set[rule]
	updates [][]int
}

// NewSolver parses "a|b" rules, a blank line, then comma-separated updates.
func NewSolver(lines []string) (*Solver, error) {
	chunks := input.Chunked(lines)
	if len(chunks) != 2 {
		return nil, fmt.Errorf("%w: want 2 sections, got %d", ErrMalformed, len(chunks))
	}

	s := &Solver{rules: mapset.New[rule]()}
	for _, l := range chunks[0] {
		a, b, ok := strings.Cut(l, "|")
		if !ok {
			return nil, fmt.Errorf("%w: rule %q", ErrMalformed, l)
		}
		before, err1 := strconv.Atoi(a)
		after, err2 := strconv.Atoi(b)
		if err := errors.Join(err1, err2); err != nil {
			return nil, fmt.Errorf("%w: rule %q: %v", ErrMalformed, l, err)
		}
		s.rules.Put(rule{before, after})
	}
	for _, l := range chunks[1] {
		pages, err := input.Ints(l, ",")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(pages) == 0 {
			return nil, fmt.Errorf("%w: empty update", ErrMalformed)
		}
		seen := mapset.New[int]()
		for _, p := range pages {
			if seen.Has(p) {
				return nil, fmt.Errorf("%w: page %d repeated in %q", ErrMalformed, p, l)
			}
			seen.Put(p)
		}
		s.updates = append(s.updates, pages)
	}

	return s, nil
}

// ordered reports whether no rule forbids any pair of pages as they appear.
func (s *Solver) ordered(pages []int) bool {
	for i := range pages {
		for j := i + 1; j < len(pages); j++ {
			if s.rules.Has(rule{pages[j], pages[i]}) {
				return false
			}
		}
	}

	return true
}

// PartOne sums the middle page of every correctly ordered update.
func (s *Solver) PartOne() int {
	sum := 0
	for _, u := range s.updates {
		if s.ordered(u) {
			sum += u[len(u)/2]
		}
	}

	return sum
}

// PartTwo re-orders every incorrectly ordered update and sums their middle pages.
func (s *Solver) PartTwo() (int, error) {
	sum := 0
	for _, u := range s.updates {
		if s.ordered(u) {
			continue
		}
		fixed, err := s.reorder(u)
		if err != nil {
			return 0, err
		}
		sum += fixed[len(fixed)/2]
	}

	return sum, nil
}

// reorder sorts pages topologically using only the rules between them.
// The full rule set may contain cycles; a single update's subset must not.
func (s *Solver) reorder(pages []int) ([]int, error) {
	g := graph.NewGraph(graph.WithDirected(true))
	page := make(map[string]int, len(pages))
	for _, p := range pages {
		id := strconv.Itoa(p)
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
		page[id] = p
	}
	for _, a := range pages {
		for _, b := range pages {
			if s.rules.Has(rule{a, b}) {
				if err := g.AddEdge(strconv.Itoa(a), strconv.Itoa(b)); err != nil {
					return nil, err
				}
			}
		}
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("update %v: %w", pages, err)
	}
	out := make([]int, len(order))
	for i, id := range order {
		out[i] = page[id]
	}

	return out, nil
}
