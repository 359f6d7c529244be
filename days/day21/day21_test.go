package day21_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/days/day21"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

func load(t *testing.T, name string) *day21.Solver {
	t.Helper()
	path := "testdata/" + name
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("%s not present", path)
	}
	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	s, err := day21.NewSolver(lines)
	require.NoError(t, err)

	return s
}

func TestSample(t *testing.T) {
	s := load(t, "sample.txt")
	assert.Equal(t, 126384, s.PartOne())
	assert.Equal(t, 154115708116294, s.PartTwo())
}

func TestInput(t *testing.T) {
	s := load(t, "input.txt")
	assert.Equal(t, 152942, s.PartOne())
	assert.Equal(t, 189235298434780, s.PartTwo())
}

func TestPressesPerDepth(t *testing.T) {
	s := load(t, "sample.txt")
	assert.Equal(t, 12, s.Presses("029A", 0))
	assert.Equal(t, 28, s.Presses("029A", 1))
	assert.Equal(t, 68, s.Presses("029A", 2))

	cases := map[string]int{"980A": 60, "179A": 68, "456A": 64, "379A": 64}
	for code, want := range cases {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, s.Presses(code, 2))
		})
	}
}

func TestPressesAroundGap(t *testing.T) {
	s, err := day21.NewSolver(nil)
	require.NoError(t, err)
	// <A ^<A >>vA: each move turns at most once and skips the gap corner
	assert.Equal(t, 9, s.Presses("01A", 0))
	assert.Positive(t, s.Presses("01A", 3))
}

func TestMalformed(t *testing.T) {
	for name, lines := range map[string][]string{
		"NoActivate": {"029"},
		"OnlyA":      {"A"},
		"Letters":    {"0B9A"},
		"Signed":     {"+29A"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day21.NewSolver(lines)
			assert.ErrorIs(t, err, day21.ErrMalformed)
		})
	}
}
