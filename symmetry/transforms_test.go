// SPDX-License-Identifier: MIT

package symmetry_test

import "github.com/katalvlaran/gridscope/grid"

// flipVertical mirrors g left-to-right (about its vertical axis).
func flipVertical(g grid.Grid) grid.Grid {
	rows, cols := g.Dimensions()
	out := grid.Zeros(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[r][cols-1-c] = g[r][c]
		}
	}
	return out
}

// flipHorizontal mirrors g top-to-bottom (about its horizontal axis).
func flipHorizontal(g grid.Grid) grid.Grid {
	rows, cols := g.Dimensions()
	out := grid.Zeros(rows, cols)
	for r := 0; r < rows; r++ {
		copy(out[rows-1-r], g[r])
	}
	return out
}

// transpose swaps rows and columns; a R×C grid becomes C×R.
func transpose(g grid.Grid) grid.Grid {
	rows, cols := g.Dimensions()
	out := grid.Zeros(cols, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c][r] = g[r][c]
		}
	}
	return out
}

// rotate90 rotates g a quarter turn clockwise; a R×C grid becomes C×R.
// Cell (r,c) moves to (c, R-1-r).
func rotate90(g grid.Grid) grid.Grid {
	rows, cols := g.Dimensions()
	out := grid.Zeros(cols, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c][rows-1-r] = g[r][c]
		}
	}
	return out
}
