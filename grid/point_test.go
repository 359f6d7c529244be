package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

func TestPointArithmetic(t *testing.T) {
	p, q := grid.Pt(3, -2), grid.Pt(1, 5)
	assert.Equal(t, grid.Pt(4, 3), p.Add(q))
	assert.Equal(t, grid.Pt(2, -7), p.Sub(q))
	assert.Equal(t, grid.Pt(-6, 4), p.Scale(-2))
	assert.Equal(t, 9, p.Manhattan(q))
	assert.Equal(t, p.Manhattan(q), q.Manhattan(p))
	assert.Equal(t, "3,-2", p.String())
	assert.Equal(t, grid.Pt(3, -5), p.MoveN(grid.Up, 3))
}

func TestPointAsMapKey(t *testing.T) {
	m := map[grid.Point]int{grid.Pt(1, 1): 1}
	m[grid.Pt(0, 1).Add(grid.Pt(1, 0))]++
	assert.Equal(t, 2, m[grid.Pt(1, 1)])
}

func TestAbsSign(t *testing.T) {
	assert.Equal(t, 5, grid.Abs(-5))
	assert.Equal(t, int64(5), grid.Abs(int64(5)))
	assert.Equal(t, -1, grid.Sign(-9))
	assert.Equal(t, 0, grid.Sign(0))
	assert.Equal(t, int8(1), grid.Sign(int8(3)))
}

//----------------------------------------------------------------------------//
// Direction
//----------------------------------------------------------------------------//

func TestDirectionRotation(t *testing.T) {
	cases := []struct {
		from      grid.Direction
		diag      bool
		cw, ccw   grid.Direction
		opposite  grid.Direction
		isDiag    bool
		wantDelta grid.Point
	}{
		{grid.Up, false, grid.Right, grid.Left, grid.Down, false, grid.Pt(0, -1)},
		{grid.Up, true, grid.UpRight, grid.UpLeft, grid.Down, false, grid.Pt(0, -1)},
		{grid.Left, false, grid.Up, grid.Down, grid.Right, false, grid.Pt(-1, 0)},
		{grid.UpLeft, true, grid.Up, grid.Left, grid.DownRight, true, grid.Pt(-1, -1)},
		{grid.DownRight, false, grid.DownLeft, grid.UpRight, grid.UpLeft, true, grid.Pt(1, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.from.String(), func(t *testing.T) {
			assert.Equal(t, tc.cw, tc.from.RotateCW(tc.diag))
			assert.Equal(t, tc.ccw, tc.from.RotateCCW(tc.diag))
			assert.Equal(t, tc.opposite, tc.from.Opposite())
			assert.Equal(t, tc.isDiag, tc.from.Diagonal())
			assert.Equal(t, tc.wantDelta, tc.from.Offset())
		})
	}
}

// TestDirectionRotationCycles verifies that rotations form closed cycles.
func TestDirectionRotationCycles(t *testing.T) {
	for _, d := range grid.All {
		r := d
		for i := 0; i < 4; i++ {
			r = r.RotateCW(false)
		}
		assert.Equal(t, d, r, "4×90° from %v", d)

		r = d
		for i := 0; i < 8; i++ {
			r = r.RotateCCW(true)
		}
		assert.Equal(t, d, r, "8×45° from %v", d)
		assert.Equal(t, d, d.RotateCW(false).RotateCCW(false))
		assert.Equal(t, grid.Pt(0, 0), d.Offset().Add(d.Opposite().Offset()))
	}
}

func TestParseDirection(t *testing.T) {
	want := map[rune]grid.Direction{
		'^': grid.Up, 'v': grid.Down, '<': grid.Left, '>': grid.Right,
		'U': grid.Up, 'D': grid.Down, 'L': grid.Left, 'R': grid.Right,
	}
	for r, d := range want {
		got, err := grid.ParseDirection(r)
		require.NoError(t, err)
		assert.Equal(t, d, got, "%q", r)
	}

	_, err := grid.ParseDirection('x')
	assert.ErrorIs(t, err, grid.ErrUnknownDirection)

	ds, err := grid.ParseDirections("<^>v")
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{grid.Left, grid.Up, grid.Right, grid.Down}, ds)

	_, err = grid.ParseDirections("<^?")
	assert.ErrorIs(t, err, grid.ErrUnknownDirection)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "DownLeft", grid.DownLeft.String())
	assert.Equal(t, "Direction(9)", grid.Direction(9).String())
}
