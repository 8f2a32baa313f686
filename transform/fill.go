// Package transform holds grid mutation utilities. They work on raw grids,
// never on analysis reports, and always return a new grid.
package transform

import "github.com/katalvlaran/gridscope/grid"

var ring8 = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// Fill recolors the interior of uniform regions. A cell is interior when it is
// not Background and all 8 of its neighbors hold the same color; such cells
// become c. Border cells of the grid never qualify. g is not modified.
func Fill(g grid.Grid, c grid.Color) grid.Grid {
	out := g.Clone()
	rows, cols := g.Dimensions()
	for r := 1; r < rows-1; r++ {
		for col := 1; col < cols-1; col++ {
			if isInterior(g, r, col) {
				out[r][col] = c
			}
		}
	}
	return out
}

// isInterior compares against the original grid so earlier recolorings do not
// shrink later interiors.
func isInterior(g grid.Grid, r, c int) bool {
	v := g[r][c]
	if v.IsBackground() {
		return false
	}
	for _, d := range ring8 {
		if g[r+d[0]][c+d[1]] != v {
			return false
		}
	}
	return true
}
