package grid

import (
	"fmt"
	"strings"
)

// FromLines builds a rune grid, one row per line.
//
// Errors:
//   - ErrEmptyGrid, ErrNonRectangular as for From2D.
func FromLines(lines []string) (*Grid[rune], error) {
	return Parse(lines, func(r rune) (rune, error) { return r, nil })
}

// Parse builds a grid by converting every rune of every line.
// The first conversion error aborts parsing and is returned wrapped with the
// offending coordinate.
func Parse[T any](lines []string, convert func(rune) (T, error)) (*Grid[T], error) {
	rows := make([][]T, 0, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		x := 0
		for _, r := range line {
			v, err := convert(r)
			if err != nil {
				return nil, fmt.Errorf("cell %v: %w", Pt(x, y), err)
			}
			row = append(row, v)
			x++
		}
		rows = append(rows, row)
	}

	return From2D(rows)
}

// Digits converts '0'..'9' to its integer value. Any other rune yields
// fallback, which lets puzzle inputs use '.' for impassable cells.
func Digits(fallback int) func(rune) (int, error) {
	return func(r rune) (int, error) {
		if r >= '0' && r <= '9' {
			return int(r - '0'), nil
		}

		return fallback, nil
	}
}

// Render formats g one row per line, using cell to draw each value.
func Render[T any](g *Grid[T], cell func(p Point, v T) string) string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			sb.WriteString(cell(p, g.cells[g.Index(p)]))
		}
	}

	return sb.String()
}

// String renders the grid with one character (or formatted value) per cell.
func (g *Grid[T]) String() string {
	return Render(g, func(_ Point, v T) string {
		switch c := any(v).(type) {
		case rune:
			return string(c)
		case byte:
			return string(rune(c))
		default:
			return fmt.Sprint(c)
		}
	})
}
