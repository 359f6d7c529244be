package region

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// Region is one maximal 4-connected group of cells sharing Value.
type Region[T comparable] struct {
	Value T

	points  []grid.Point // first-visited order
	members mapset.Set[grid.Point]

	perimeter, sides int
	measured         bool
}

// Area returns the number of cells in r.
func (r *Region[T]) Area() int {
	return len(r.points)
}

// Perimeter returns the number of boundary edges of r.
func (r *Region[T]) Perimeter() int {
	r.measure()

	return r.perimeter
}

// Sides returns the number of straight boundary segments of r.
func (r *Region[T]) Sides() int {
	r.measure()

	return r.sides
}

// Contains reports whether p is a member of r.
func (r *Region[T]) Contains(p grid.Point) bool {
	return r.members.Has(p)
}

// Points returns a copy of the member cells in first-visited order.
func (r *Region[T]) Points() []grid.Point {
	out := make([]grid.Point, len(r.points))
	copy(out, r.points)

	return out
}

// measure fills perimeter and sides in one pass over the members.
func (r *Region[T]) measure() {
	if r.measured {
		return
	}
	for _, p := range r.points {
		for _, d := range grid.Cardinals {
			if !r.members.Has(p.Move(d)) {
				r.perimeter++
			}
			// corner between d and the next cardinal clockwise
			e := d.RotateCW(false)
			a, b := r.members.Has(p.Move(d)), r.members.Has(p.Move(e))
			switch {
			case !a && !b:
				r.sides++ // outer
			case a && b && !r.members.Has(p.Move(d.RotateCW(true))):
				r.sides++ // inner
			}
		}
	}
	r.measured = true
}

// Find partitions g into regions of equal, 4-connected cells.
func Find[T comparable](g *grid.Grid[T]) []*Region[T] {
	claimed := make([]bool, g.Width()*g.Height())
	var out []*Region[T]

	for _, start := range g.Points() {
		if claimed[g.Index(start)] {
			continue
		}
		out = append(out, grow(g, start, claimed))
	}

	return out
}

// grow flood-fills the region containing start, marking cells in claimed.
func grow[T comparable](g *grid.Grid[T], start grid.Point, claimed []bool) *Region[T] {
	value := g.GetOrDefault(start, *new(T))
	r := &Region[T]{Value: value, members: mapset.New[grid.Point]()}

	work := stack.New[grid.Point]()
	work.Push(start)
	claimed[g.Index(start)] = true

	for work.Size() > 0 {
		p := work.Pop()
		r.points = append(r.points, p)
		r.members.Put(p)

		for _, n := range g.Neighbors(p, false) {
			v, ok := g.Lookup(n.Point)
			if !ok || v != value || claimed[g.Index(n.Point)] {
				continue
			}
			claimed[g.Index(n.Point)] = true
			work.Push(n.Point)
		}
	}

	return r
}
