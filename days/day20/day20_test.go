package day20_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/days/day20"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

func load(t *testing.T, name string, opts ...day20.Option) *day20.Solver {
	t.Helper()
	path := "testdata/" + name
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("%s not present", path)
	}
	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	s, err := day20.NewSolver(lines, opts...)
	require.NoError(t, err)

	return s
}

func TestSampleCheats(t *testing.T) {
	s := load(t, "sample.txt")
	assert.Equal(t, 84, s.Length())

	cases := []struct {
		radius, minSave, want int
	}{
		{2, 2, 44},
		{2, 20, 5},
		{2, 64, 1},
		{2, 65, 0},
		{20, 50, 285},
		{20, 72, 29},
		{20, 76, 3},
		{20, 77, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, s.Cheats(tc.radius, tc.minSave), "radius %d, min %d", tc.radius, tc.minSave)
	}
}

func TestSampleParts(t *testing.T) {
	s := load(t, "sample.txt", day20.WithMinSavings(50))
	assert.Equal(t, 1, s.PartOne())
	assert.Equal(t, 285, s.PartTwo())
}

func TestInput(t *testing.T) {
	s := load(t, "input.txt")
	assert.Equal(t, 1327, s.PartOne())
	assert.Equal(t, 985737, s.PartTwo())
}

func TestPicture(t *testing.T) {
	s := load(t, "sample.txt")
	g, route := s.Picture()
	assert.Len(t, route, 85)
	v, _ := g.Lookup(route[0])
	assert.Equal(t, 'S', v)
	v, _ = g.Lookup(route[len(route)-1])
	assert.Equal(t, 'E', v)
}

func TestNewSolver_Errors(t *testing.T) {
	_, err := day20.NewSolver([]string{"#.E"})
	assert.ErrorIs(t, err, day20.ErrNoStart)
	_, err = day20.NewSolver([]string{"S.#"})
	assert.ErrorIs(t, err, day20.ErrNoEnd)
	_, err = day20.NewSolver([]string{"S#E"})
	assert.ErrorIs(t, err, day20.ErrNoTrack)
	_, err = day20.NewSolver([]string{"S.E"}, day20.WithMinSavings(0))
	assert.ErrorIs(t, err, day20.ErrOptionViolation)
}
