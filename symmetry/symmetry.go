// SPDX-License-Identifier: MIT

package symmetry

import "github.com/katalvlaran/gridscope/grid"

// Flags bundles the four symmetry predicates for one grid.
type Flags struct {
	Vertical     bool
	Horizontal   bool
	Diagonal     bool
	Rotational90 bool
}

// Test evaluates all four predicates on g.
func Test(g grid.Grid) Flags {
	return Flags{
		Vertical:     Vertical(g),
		Horizontal:   Horizontal(g),
		Diagonal:     Diagonal(g),
		Rotational90: Rotational90(g),
	}
}

// Vertical reports whether each row mirrors across the middle column:
// g[r][i] == g[r][cols-1-i] for all i < cols/2.
func Vertical(g grid.Grid) bool {
	if len(g) == 0 {
		return true
	}
	cols := g.Columns()
	for _, row := range g {
		for i := 0; i < cols/2; i++ {
			if row[i] != row[cols-1-i] {
				return false
			}
		}
	}
	return true
}

// Horizontal reports whether each column mirrors across the middle row:
// g[r][c] == g[rows-1-r][c] for all r < rows/2.
func Horizontal(g grid.Grid) bool {
	if len(g) == 0 {
		return true
	}
	rows, cols := g.Dimensions()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows/2; r++ {
			if g[r][c] != g[rows-1-r][c] {
				return false
			}
		}
	}
	return true
}

// Diagonal reports whether g equals its transpose.
// The strict upper triangle is scanned once.
func Diagonal(g grid.Grid) bool {
	if len(g) == 0 {
		return true
	}
	n := g.Rows()
	if n != g.Columns() {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g[i][j] != g[j][i] {
				return false
			}
		}
	}
	return true
}

// Rotational90 reports whether g is unchanged by a 90° rotation,
// i.e. g[r][c] == g[c][n-1-r] for every cell.
func Rotational90(g grid.Grid) bool {
	if len(g) == 0 {
		return true
	}
	n := g.Rows()
	if n != g.Columns() {
		return false
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g[r][c] != g[c][n-1-r] {
				return false
			}
		}
	}
	return true
}
