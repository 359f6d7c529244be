package main

import (
	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

var (
	heading   = color.Style{color.FgCyan, color.OpBold}
	answer    = color.Style{color.FgGreen, color.OpBold}
	wallStyle = color.Style{color.FgGray}
	markStyle = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	openStyle = color.Style{color.FgGray, color.OpBold}
)

// render draws g one row per line. Marked cells are drawn bright, walls dim.
// A marked floor cell is drawn as 'O' so the route stays visible without color.
func render(g *grid.Grid[rune], marks []grid.Point) string {
	marked := mapset.New[grid.Point]()
	for _, p := range marks {
		marked.Put(p)
	}

	return grid.Render(g, func(p grid.Point, v rune) string {
		switch {
		case marked.Has(p):
			if v == '.' {
				v = 'O'
			}
			return markStyle.Sprint(string(v))
		case v == '#':
			return wallStyle.Sprint(string(v))
		case v == '.':
			return openStyle.Sprint(string(v))
		}

		return string(v)
	})
}
