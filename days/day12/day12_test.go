package day12_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/days/day12"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

func load(t *testing.T, name string) *day12.Solver {
	t.Helper()
	path := "testdata/" + name
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("%s not present", path)
	}
	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	s, err := day12.NewSolver(lines)
	require.NoError(t, err)

	return s
}

func TestSample(t *testing.T) {
	s := load(t, "sample.txt")
	assert.Equal(t, 1930, s.PartOne())
	assert.Equal(t, 1206, s.PartTwo())
	assert.Len(t, s.Regions(), 11)
}

func TestInput(t *testing.T) {
	s := load(t, "input.txt")
	assert.Equal(t, 1437300, s.PartOne())
	assert.Equal(t, 849332, s.PartTwo())
}

func TestSmallGardens(t *testing.T) {
	cases := []struct {
		name     string
		lines    []string
		one, two int
	}{
		{"abcde", []string{"AAAA", "BBCD", "BBCC", "EEEC"}, 140, 80},
		{"nested", []string{"OOOOO", "OXOXO", "OOOOO", "OXOXO", "OOOOO"}, 772, 436},
		{"e-shape", []string{"EEEEE", "EXXXX", "EEEEE", "EXXXX", "EEEEE"}, 692, 236},
		{"diagonal touch", []string{"AAAAAA", "AAABBA", "AAABBA", "ABBAAA", "ABBAAA", "AAAAAA"}, 1184, 368},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := day12.NewSolver(tc.lines)
			require.NoError(t, err)
			assert.Equal(t, tc.one, s.PartOne())
			assert.Equal(t, tc.two, s.PartTwo())
		})
	}
}
