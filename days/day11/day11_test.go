package day11_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/days/day11"
	"github.com/jfkriz/AdventOfCode-2024/input"
)

func load(t *testing.T, name string) *day11.Solver {
	t.Helper()
	path := "testdata/" + name
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skipf("%s not present", path)
	}
	lines, err := input.ReadLines(path)
	require.NoError(t, err)
	s, err := day11.NewSolver(lines)
	require.NoError(t, err)

	return s
}

func TestSample(t *testing.T) {
	s := load(t, "sample.txt")
	assert.Equal(t, 22, s.Blink(6))
	assert.Equal(t, 55312, s.PartOne())
	assert.Equal(t, 65601038650482, s.PartTwo())
}

func TestInput(t *testing.T) {
	s := load(t, "input.txt")
	assert.Equal(t, 194782, s.PartOne())
	assert.Equal(t, 233007586663131, s.PartTwo())
}

func TestSplit(t *testing.T) {
	cases := map[string]struct {
		in, left, right int
		split           bool
	}{
		"Zero":       {0, 1, 0, false},
		"OddDigits":  {1, 2024, 0, false},
		"EvenDigits": {1000, 10, 0, true},
		"TwoDigits":  {17, 1, 7, true},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			l, r, split := day11.Split(c.in)
			assert.Equal(t, c.left, l)
			assert.Equal(t, c.right, r)
			assert.Equal(t, c.split, split)
		})
	}
}

func TestSingleBlink(t *testing.T) {
	s, err := day11.NewSolver([]string{"0"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Blink(1))

	s, err = day11.NewSolver([]string{"1000"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Blink(1))
	assert.Equal(t, 1, s.Blink(0))
}

func TestMalformed(t *testing.T) {
	for name, lines := range map[string][]string{
		"Word":     {"12 x"},
		"Negative": {"12 -1"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day11.NewSolver(lines)
			assert.ErrorIs(t, err, day11.ErrMalformed)
		})
	}
}
