package day19_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/days/day19"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

func load(t *testing.T, name string) *day19.Solver {
	t.Helper()
	path := "testdata/" + name
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("%s not present", path)
	}
	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	s, err := day19.NewSolver(lines)
	require.NoError(t, err)

	return s
}

func TestSample(t *testing.T) {
	s := load(t, "sample.txt")
	assert.Equal(t, 6, s.PartOne())
	assert.Equal(t, 16, s.PartTwo())
}

func TestInput(t *testing.T) {
	s := load(t, "input.txt")
	assert.Equal(t, 209, s.PartOne())
	assert.Equal(t, 777669668613191, s.PartTwo())
}

func TestArrangements(t *testing.T) {
	s := load(t, "sample.txt")
	cases := map[string]int{
		"brwrr":  2,
		"bggr":   1,
		"gbbr":   4,
		"rrbgbr": 6,
		"ubwu":   0,
		"bwurrg": 1,
		"brgr":   2,
		"bbrgwb": 0,
	}
	for design, want := range cases {
		t.Run(design, func(t *testing.T) {
			assert.Equal(t, want, s.Arrangements(design))
		})
	}
}

func TestMalformed(t *testing.T) {
	for name, lines := range map[string][]string{
		"NoDesigns":  {"r, wr"},
		"EmptyTowel": {"r,,wr", "", "rwr"},
		"TwoLines":   {"r", "wr", "", "rwr"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day19.NewSolver(lines)
			assert.ErrorIs(t, err, day19.ErrMalformed)
		})
	}
}
