package grid

import "fmt"

// Grid is a rectangular, row-major, 0-indexed table of cells.
// Width and height are fixed at construction.
type Grid[T any] struct {
	width, height int
	cells         []T // len == width*height, row-major
}

// New returns a w×h grid with every cell set to fill.
//
// Errors:
//   - ErrEmptyGrid if w <= 0 or h <= 0.
func New[T any](w, h int, fill T) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// From2D builds a grid from rows of cells, copying the values.
//
// Errors:
//   - ErrEmptyGrid if rows is empty or the first row is empty.
//   - ErrNonRectangular if any row differs in length from the first.
func From2D[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([]T, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: len(rows), cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Contains reports whether p lies inside the grid. It never inspects cells.
func (g *Grid[T]) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its row-major offset (y*Width + x). The result is only
// meaningful when Contains(p) holds.
func (g *Grid[T]) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate is the inverse of Index.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Get returns the cell at p.
//
// Errors:
//   - ErrOutOfBounds if p is outside the grid.
func (g *Grid[T]) Get(p Point) (T, error) {
	if !g.Contains(p) {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}

	return g.cells[g.Index(p)], nil
}

// GetOrDefault returns the cell at p, or def when p is outside the grid.
func (g *Grid[T]) GetOrDefault(p Point, def T) T {
	if !g.Contains(p) {
		return def
	}

	return g.cells[g.Index(p)]
}

// Lookup returns the cell at p and whether p is inside the grid.
func (g *Grid[T]) Lookup(p Point) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}

	return g.cells[g.Index(p)], true
}

// Set overwrites the cell at p in place.
//
// Errors:
//   - ErrOutOfBounds if p is outside the grid.
func (g *Grid[T]) Set(p Point, v T) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	g.cells[g.Index(p)] = v

	return nil
}

// Neighbors yields the 4 cardinal (or all 8) candidates around p.
// Candidates are NOT filtered by bounds; combine with Contains.
func (g *Grid[T]) Neighbors(p Point, includeDiagonals bool) []Neighbor {
	return p.Neighbors(includeDiagonals)
}

// Points returns every coordinate in row-major order.
func (g *Grid[T]) Points() []Point {
	out := make([]Point, len(g.cells))
	for i := range g.cells {
		out[i] = g.Coordinate(i)
	}

	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Point, v T)) {
	for i, v := range g.cells {
		fn(g.Coordinate(i), v)
	}
}

// Clone returns an independent deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = make([]T, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}

	return rows
}

// FindFunc returns the first point (row-major) whose cell satisfies match.
func (g *Grid[T]) FindFunc(match func(T) bool) (Point, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coordinate(i), true
		}
	}

	return Point{}, false
}

// FindAllFunc returns every point whose cell satisfies match, row-major.
func (g *Grid[T]) FindAllFunc(match func(T) bool) []Point {
	var out []Point
	for i, v := range g.cells {
		if match(v) {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// CountFunc returns how many cells satisfy match.
func (g *Grid[T]) CountFunc(match func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if match(v) {
			n++
		}
	}

	return n
}

// Find returns the first point (row-major) holding v.
//
// Errors:
//   - ErrNotFound if no cell equals v.
func Find[T comparable](g *Grid[T], v T) (Point, error) {
	p, ok := g.FindFunc(func(c T) bool { return c == v })
	if !ok {
		return Point{}, fmt.Errorf("%w: %v", ErrNotFound, v)
	}

	return p, nil
}

// FindAll returns every point holding v, row-major.
func FindAll[T comparable](g *Grid[T], v T) []Point {
	return g.FindAllFunc(func(c T) bool { return c == v })
}

// Count returns how many cells equal v.
func Count[T comparable](g *Grid[T], v T) int {
	return g.CountFunc(func(c T) bool { return c == v })
}
