// SPDX-License-Identifier: MIT

package grid

import "slices"

// Rows returns the number of rows; 0 for the empty grid.
func (g Grid) Rows() int { return len(g) }

// Columns returns the length of the first row; 0 if the grid has no rows.
func (g Grid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Dimensions returns (rows, columns).
func (g Grid) Dimensions() (int, int) { return g.Rows(), g.Columns() }

// Cells returns rows×columns.
func (g Grid) Cells() int { return g.Rows() * g.Columns() }

// ColorFrequency tallies every cell exactly once, Background included.
// The empty grid yields an empty, non-nil map.
func (g Grid) ColorFrequency() map[Color]int {
	freq := make(map[Color]int)
	for _, row := range g {
		for _, v := range row {
			freq[v]++
		}
	}
	return freq
}

// UniqueColorCount returns the number of distinct cell values, Background included.
func (g Grid) UniqueColorCount() int {
	return len(g.ColorFrequency())
}

// UniqueColors returns the distinct cell values in ascending order.
func (g Grid) UniqueColors() []Color {
	freq := g.ColorFrequency()
	out := make([]Color, 0, len(freq))
	for c := range freq {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// MajorityColor returns the color with the highest frequency.
// Ties are broken by the lowest color value.
// Returns ErrEmptyGrid when the grid has no cells.
func (g Grid) MajorityColor() (Color, error) {
	freq := g.ColorFrequency()
	if len(freq) == 0 {
		return Background, ErrEmptyGrid
	}
	best, bestCount := Background, -1
	for _, c := range g.UniqueColors() {
		if n := freq[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best, nil
}
