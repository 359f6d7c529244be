package dfs

import (
	"fmt"

	"github.com/jfkriz/AdventOfCode-2024/graph"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *graph.Graph   // the graph being sorted
	state map[string]int // visitation state: White, Gray, Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a linear ordering of all vertices in g such that
// for every edge u→v, u appears before v.
//
// Vertices and neighbours are visited in ascending ID order, so the result is
// deterministic for a given graph.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrUndirectedGraph if g is undirected.
//   - ErrCycleDetected (wrapped with the vertex closing the cycle) if g is not a DAG.
//
// Complexity:
//
//   - Time:   O(V log V + E log E) (sorted neighbour lists)
//   - Memory: O(V)                  (recursion depth and state map)
func TopologicalSort(g *graph.Graph) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	// 3. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	// 4. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	switch t.state[id] {
	case Gray:
		// back-edge
		return fmt.Errorf("%w at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		if err = t.visit(n); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
