package main

import (
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

func TestRender(t *testing.T) {
	color.Enable = false
	t.Cleanup(func() { color.Enable = true })

	g, err := grid.FromLines([]string{
		"#####",
		"#S.E#",
		"#.#.#",
	})
	require.NoError(t, err)

	out := render(g, []grid.Point{grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(3, 1)})
	assert.Equal(t, "#####\n#SOE#\n#.#.#", out)
}
