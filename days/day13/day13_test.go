package day13_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/days/day13"
	"github.com/jfkriz/AdventOfCode-2024/grid"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

func load(t *testing.T, name string) *day13.Solver {
	t.Helper()
	path := "testdata/" + name
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("%s not present", path)
	}
	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	s, err := day13.NewSolver(lines)
	require.NoError(t, err)

	return s
}

func TestSample(t *testing.T) {
	s := load(t, "sample.txt")
	assert.Equal(t, 480, s.PartOne())
	assert.Equal(t, 875318608908, s.PartTwo())
}

func TestInput(t *testing.T) {
	s := load(t, "input.txt")
	assert.Equal(t, 36838, s.PartOne())
	assert.Equal(t, 83029436920891, s.PartTwo())
}

func TestPresses(t *testing.T) {
	cases := map[string]struct {
		m    day13.Machine
		a, b int
		ok   bool
	}{
		"Sample": {
			m: day13.Machine{A: grid.Pt(94, 34), B: grid.Pt(22, 67), Prize: grid.Pt(8400, 5400)},
			a: 80, b: 40, ok: true,
		},
		"NotIntegral": {
			m: day13.Machine{A: grid.Pt(26, 66), B: grid.Pt(67, 21), Prize: grid.Pt(12748, 12176)},
		},
		"Parallel": {
			m: day13.Machine{A: grid.Pt(1, 1), B: grid.Pt(2, 2), Prize: grid.Pt(4, 4)},
		},
		"Negative": {
			m: day13.Machine{A: grid.Pt(1, 0), B: grid.Pt(0, 1), Prize: grid.Pt(-2, 3)},
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			a, b, ok := c.m.Presses()
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.a, a)
			assert.Equal(t, c.b, b)
		})
	}
}

func TestPressLimit(t *testing.T) {
	s, err := day13.NewSolver([]string{
		"Button A: X+1, Y+0",
		"Button B: X+0, Y+1",
		"Prize: X=101, Y=2",
	})
	require.NoError(t, err)
	assert.Zero(t, s.PartOne())
	assert.Equal(t, 3*101+2, s.Tokens(0, 0))
}

func TestMalformed(t *testing.T) {
	for name, lines := range map[string][]string{
		"ShortBlock": {"Button A: X+1, Y+0", "Button B: X+0, Y+1"},
		"BadPrize":   {"Button A: X+1, Y+0", "Button B: X+0, Y+1", "Prize: X=a, Y=2"},
		"Swapped":    {"Button B: X+1, Y+0", "Button A: X+0, Y+1", "Prize: X=1, Y=2"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day13.NewSolver(lines)
			assert.ErrorIs(t, err, day13.ErrMalformed)
		})
	}
}
