package grid

// Match is a type-erased cell predicate. It lets search packages accept
// cell-based options (walls, goals) without making their Option types generic.
type Match struct {
	accepts func(any) bool
	test    func(any) bool
}

// Is matches cells equal to any of values.
func Is[T comparable](values ...T) Match {
	return Match{
		accepts: accepts[T],
		test: func(v any) bool {
			c, ok := v.(T)
			if !ok {
				return false
			}
			for _, w := range values {
				if c == w {
					return true
				}
			}

			return false
		},
	}
}

// Where matches cells for which fn returns true.
func Where[T any](fn func(T) bool) Match {
	return Match{
		accepts: accepts[T],
		test: func(v any) bool {
			c, ok := v.(T)

			return ok && fn(c)
		},
	}
}

func accepts[T any](v any) bool {
	_, ok := v.(T)

	return ok
}

// Compatible reports whether m was built for the cell type of g.
func Compatible[T any](m Match, g *Grid[T]) bool {
	if m.accepts == nil {
		return false
	}
	var zero T

	return m.accepts(any(zero))
}

// Mask evaluates m on every cell of g and returns the results in row-major
// order (index with g.Index).
func Mask[T any](g *Grid[T], ms ...Match) []bool {
	out := make([]bool, len(g.cells))
	for i, v := range g.cells {
		for _, m := range ms {
			if m.test != nil && m.test(any(v)) {
				out[i] = true
				break
			}
		}
	}

	return out
}
