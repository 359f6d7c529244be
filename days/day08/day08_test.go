package day08_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/days/day08"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

func TestSample(t *testing.T) {
	lines, err := input.ReadLines("testdata/sample.txt")
	require.NoError(t, err)
	s, err := day08.NewSolver(lines)
	require.NoError(t, err)

	assert.Equal(t, 14, s.PartOne())
	assert.Equal(t, 34, s.PartTwo())
}

func TestHarmonics(t *testing.T) {
	s, err := day08.NewSolver([]string{
		"T.........",
		"...T......",
		".T........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, s.PartTwo())
}

func TestSingleAntenna(t *testing.T) {
	s, err := day08.NewSolver([]string{"...", ".a.", "..."})
	require.NoError(t, err)
	assert.Zero(t, s.PartOne())
	assert.Zero(t, s.PartTwo())
}
