package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/bfs"
	"github.com/jfkriz/AdventOfCode-2024/grid"
)

func open(t *testing.T, w, h int) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.New(w, h, '.')
	require.NoError(t, err)

	return g
}

func lines(t *testing.T, ls ...string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.FromLines(ls)
	require.NoError(t, err)

	return g
}

// bytes18 are the first twelve falling bytes of a 7×7 memory space.
var bytes18 = []grid.Point{
	{X: 5, Y: 4}, {X: 4, Y: 2}, {X: 4, Y: 5}, {X: 3, Y: 0}, {X: 2, Y: 1}, {X: 6, Y: 3},
	{X: 2, Y: 4}, {X: 1, Y: 5}, {X: 0, Y: 6}, {X: 3, Y: 3}, {X: 2, Y: 6}, {X: 5, Y: 1},
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	var nilGrid *grid.Grid[rune]
	_, err := bfs.ShortestPath(nilGrid, grid.Pt(0, 0), grid.Pt(0, 0))
	assert.ErrorIs(t, err, bfs.ErrNilGrid)

	g := open(t, 3, 3)
	_, err = bfs.ShortestPath(g, grid.Pt(-1, 0), grid.Pt(0, 0))
	assert.ErrorIs(t, err, bfs.ErrStartOutOfBounds)
	_, err = bfs.ShortestPath(g, grid.Pt(0, 0), grid.Pt(3, 0))
	assert.ErrorIs(t, err, bfs.ErrEndOutOfBounds)
	_, err = bfs.Distances(g, grid.Pt(0, 0), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.Distances(g, grid.Pt(0, 0), bfs.WithWall(1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestShortestPath_OpenGrid is the 7×7 corner-to-corner scenario.
func TestShortestPath_OpenGrid(t *testing.T) {
	d, err := bfs.ShortestPath(open(t, 7, 7), grid.Pt(0, 0), grid.Pt(6, 6))
	require.NoError(t, err)
	assert.Equal(t, 12, d)

	d, err = bfs.ShortestPath(open(t, 7, 7), grid.Pt(3, 3), grid.Pt(3, 3))
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestShortestPath_Overlay(t *testing.T) {
	g := open(t, 7, 7)
	d, err := bfs.ShortestPath(g, grid.Pt(0, 0), grid.Pt(6, 6), bfs.WithBlocked(bytes18...))
	require.NoError(t, err)
	assert.Equal(t, 22, d)
	assert.Zero(t, grid.Count(g, '#'), "overlay must not touch the grid")
	assert.Equal(t, 49, grid.Count(g, '.'))

	// overlay points off the grid are ignored
	d, err = bfs.ShortestPath(g, grid.Pt(0, 0), grid.Pt(6, 6), bfs.WithBlocked(grid.Pt(-1, 0), grid.Pt(7, 7)))
	require.NoError(t, err)
	assert.Equal(t, 12, d)
}

// TestShortestPath_IdempotentAndMonotone checks that repeated queries agree
// and that growing the overlay never shortens the path.
func TestShortestPath_IdempotentAndMonotone(t *testing.T) {
	g := open(t, 7, 7)
	prev := 0
	for n := 0; n <= len(bytes18); n++ {
		a, err := bfs.ShortestPath(g, grid.Pt(0, 0), grid.Pt(6, 6), bfs.WithBlocked(bytes18[:n]...))
		require.NoError(t, err)
		b, err := bfs.ShortestPath(g, grid.Pt(0, 0), grid.Pt(6, 6), bfs.WithBlocked(bytes18[:n]...))
		require.NoError(t, err)
		assert.Equal(t, a, b, "n=%d", n)
		assert.GreaterOrEqual(t, a, prev, "n=%d", n)
		prev = a
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := lines(t,
		".#.",
		"##.",
		"...",
	)
	d, err := bfs.ShortestPath(g, grid.Pt(0, 0), grid.Pt(2, 2), bfs.WithWall('#'))
	require.NoError(t, err)
	assert.Equal(t, bfs.Unreachable, d)

	// a walled end is unreachable, not an error
	d, err = bfs.ShortestPath(g, grid.Pt(2, 2), grid.Pt(1, 1), bfs.WithWall('#'))
	require.NoError(t, err)
	assert.Equal(t, bfs.Unreachable, d)
}

func TestDistances_PathTo(t *testing.T) {
	g := lines(t,
		"S.#",
		"#.#",
		"#..",
	)
	res, err := bfs.Distances(g, grid.Pt(0, 0), bfs.WithWallFunc(func(r rune) bool { return r == '#' }))
	require.NoError(t, err)

	assert.Equal(t, 4, res.Distance(grid.Pt(2, 2)))
	assert.Equal(t, bfs.Unreachable, res.Distance(grid.Pt(2, 0)))
	assert.Equal(t, bfs.Unreachable, res.Distance(grid.Pt(9, 9)))
	assert.True(t, res.Reached(grid.Pt(1, 1)))
	assert.Len(t, res.Order, 5)
	assert.Equal(t, grid.Pt(0, 0), res.Order[0])

	path, err := res.PathTo(grid.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}, path)

	_, err = res.PathTo(grid.Pt(2, 0))
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestDistances_MaxDepthAndDiagonals(t *testing.T) {
	g := open(t, 5, 5)
	res, err := bfs.Distances(g, grid.Pt(0, 0), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6) // 1 + 2 + 3
	assert.False(t, res.Reached(grid.Pt(2, 1)))

	res, err = bfs.Distances(g, grid.Pt(0, 0), bfs.WithDiagonals())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Distance(grid.Pt(4, 4)))
	assert.Equal(t, 4, res.Distance(grid.Pt(4, 1)))
}

func TestDistances_FilterNeighbor(t *testing.T) {
	g := open(t, 4, 1)
	// one-way street: only rightward steps
	rightOnly := bfs.WithFilterNeighbor(func(from, to grid.Point) bool { return to.X > from.X })
	res, err := bfs.Distances(g, grid.Pt(1, 0), rightOnly)
	require.NoError(t, err)
	assert.False(t, res.Reached(grid.Pt(0, 0)))
	assert.Equal(t, 2, res.Distance(grid.Pt(3, 0)))
}

func TestDistances_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	visits := 0
	_, err := bfs.Distances(open(t, 3, 3), grid.Pt(0, 0), bfs.WithOnVisit(func(_ grid.Point, depth int) error {
		visits++
		if depth == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 4, visits)
}
