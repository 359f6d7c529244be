package graph

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of distinct edges. An undirected edge counts once.
func (g *Graph) EdgeCount() int { return g.edges }

// AddVertex inserts id if it is not already present.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensure(id)

	return nil
}

// AddEdge connects from to to, creating missing endpoints.
// Re-adding an existing edge is a no-op.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	g.ensure(from)
	g.ensure(to)
	if g.adjacency[from].Has(to) {
		return nil
	}
	g.adjacency[from].Put(to)
	if !g.directed {
		g.adjacency[to].Put(from)
	}
	g.edges++

	return nil
}

// ensure creates id with no neighbours unless it already exists.
func (g *Graph) ensure(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = mapset.New[string]()
	}
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether an edge from→to exists. For undirected graphs the
// order of endpoints does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	adj, ok := g.adjacency[from]

	return ok && adj.Has(to)
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the IDs reachable from id by one edge, in ascending order.
func (g *Graph) Neighbors(id string) ([]string, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, adj.Size())
	adj.Each(func(n string) { out = append(out, n) })
	sort.Strings(out)

	return out, nil
}

// NeighborSet returns a copy of the neighbours of id as a set.
func (g *Graph) NeighborSet(id string) (mapset.Set[string], error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return mapset.New[string](), fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := mapset.New[string]()
	adj.Each(out.Put)

	return out, nil
}

// Degree returns the number of neighbours of id (out-degree when directed).
func (g *Graph) Degree(id string) (int, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return adj.Size(), nil
}
