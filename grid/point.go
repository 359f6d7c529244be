package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is an immutable integer coordinate. Equality and hashing are by value,
// so a Point can be used directly as a map or set key.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both components multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Move returns the point one step from p in direction d.
func (p Point) Move(d Direction) Point {
	return p.Add(d.Offset())
}

// MoveN returns the point n steps from p in direction d.
func (p Point) MoveN(d Direction, n int) Point {
	return p.Add(d.Offset().Scale(n))
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Neighbors returns the 4 cardinal (or all 8) points around p, in clockwise
// order starting at Up. No bounds filtering is applied.
func (p Point) Neighbors(includeDiagonals bool) []Neighbor {
	dirs := Cardinals
	if includeDiagonals {
		dirs = All
	}
	out := make([]Neighbor, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, Neighbor{Dir: d, Point: p.Move(d)})
	}

	return out
}

// String formats p as "x,y", the form puzzle answers use.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sign returns -1, 0 or +1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
