package clique

import (
	"errors"
	"slices"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/jfkriz/AdventOfCode-2024/graph"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrDirectedGraph is returned for directed graphs.
	ErrDirectedGraph = errors.New("clique: graph must be undirected")
)

func validate(g *graph.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirectedGraph
	}

	return nil
}

// Triangles returns every set of three mutually adjacent vertices.
func Triangles(g *graph.Graph) ([][3]string, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	var out [][3]string
	for _, u := range g.Vertices() {
		nu, _ := g.Neighbors(u)
		for _, v := range nu {
			if v <= u {
				continue
			}
			nv, _ := g.Neighbors(v)
			for _, w := range nv {
				if w > v && g.HasEdge(u, w) {
					out = append(out, [3]string{u, v, w})
				}
			}
		}
	}

	return out, nil
}

// Maximal returns every maximal clique of g.
func Maximal(g *graph.Graph) ([][]string, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	bk := &bronKerbosch{g: g, neighbors: make(map[string]mapset.Set[string])}
	p := mapset.New[string]()
	for _, v := range g.Vertices() {
		p.Put(v)
		adj, err := g.NeighborSet(v)
		if err != nil {
			return nil, err
		}
		bk.neighbors[v] = adj
	}
	bk.run(nil, p, mapset.New[string]())

	sort.Slice(bk.found, func(i, j int) bool {
		return slices.Compare(bk.found[i], bk.found[j]) < 0
	})

	return bk.found, nil
}

// Maximum returns a largest clique of g, or nil for an empty graph.
func Maximum(g *graph.Graph) ([]string, error) {
	all, err := Maximal(g)
	if err != nil {
		return nil, err
	}

	var best []string
	for _, c := range all {
		// all is sorted, so the first clique of a given size wins ties
		if len(c) > len(best) {
			best = c
		}
	}

	return best, nil
}

type bronKerbosch struct {
	g         *graph.Graph
	neighbors map[string]mapset.Set[string]
	found     [][]string
}

// run reports r when it cannot be extended. p holds candidates that extend r,
// x holds vertices already tried for r.
func (b *bronKerbosch) run(r []string, p, x mapset.Set[string]) {
	if p.Size() == 0 && x.Size() == 0 {
		if len(r) == 0 {
			return
		}
		c := slices.Clone(r)
		sort.Strings(c)
		b.found = append(b.found, c)
		return
	}

	pivot := b.pivot(p, x)
	for _, v := range sorted(p) {
		if b.neighbors[pivot].Has(v) {
			continue
		}
		nv := b.neighbors[v]
		b.run(append(r, v), intersect(p, nv), intersect(x, nv))
		p.Remove(v)
		x.Put(v)
	}
}

// pivot picks the vertex of p∪x with the most neighbours in p, smallest ID on ties.
func (b *bronKerbosch) pivot(p, x mapset.Set[string]) string {
	var (
		best  string
		score = -1
	)
	for _, set := range []mapset.Set[string]{p, x} {
		for _, u := range sorted(set) {
			n := 0
			p.Each(func(v string) {
				if b.neighbors[u].Has(v) {
					n++
				}
			})
			if n > score || (n == score && u < best) {
				best, score = u, n
			}
		}
	}

	return best
}

func intersect(a, b mapset.Set[string]) mapset.Set[string] {
	out := mapset.New[string]()
	a.Each(func(v string) {
		if b.Has(v) {
			out.Put(v)
		}
	})

	return out
}

func sorted(s mapset.Set[string]) []string {
	out := make([]string, 0, s.Size())
	s.Each(func(v string) { out = append(out, v) })
	sort.Strings(out)

	return out
}
